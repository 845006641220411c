package types

// MarketInsights is a model-generated snapshot of the job market for a
// domain. Derived from AnalysisResult.DomainStrength and never cached;
// it is refetched whenever the domain changes.
type MarketInsights struct {
	Summary         string   `json:"summary"`
	TrendingSkills  []string `json:"trendingSkills"`
	SalaryRanges    string   `json:"salaryRanges"`
	HiringCompanies []string `json:"hiringCompanies"`
}
