// Package types provides type definitions for structured data used throughout the career-advisor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"net/url"
	"strings"
)

// ResourceType classifies a learning resource
type ResourceType string

// Allowed learning resource types. The model is constrained to these literals.
const (
	ResourceYouTube  ResourceType = "YouTube"
	ResourceCoursera ResourceType = "Coursera"
	ResourceArticle  ResourceType = "Article"
	ResourceOther    ResourceType = "Other"
)

// LearningResource is a single entry in a skill's learning roadmap.
// The URL field doubles as the resource's stable identity for completion
// tracking; it is not guaranteed to be a dereferenceable link.
type LearningResource struct {
	Title string       `json:"title"`
	URL   string       `json:"url"`
	Type  ResourceType `json:"type"`
}

// ID returns the stable identifier used for completion tracking.
func (r LearningResource) ID() string {
	return r.URL
}

// SearchURL synthesizes a web-search link from the resource title.
// Consumers needing a clickable target use this rather than trusting URL.
func (r LearningResource) SearchURL() string {
	return fmt.Sprintf("https://www.google.com/search?q=%s", url.QueryEscape(r.Title))
}

// SkillGap is a skill the candidate is missing for a specific job,
// with an ordered learning roadmap (model-bounded, typically 2 entries).
type SkillGap struct {
	Skill             string             `json:"skill"`
	Reason            string             `json:"reason"`
	EstimatedTimeline string             `json:"estimatedTimeline"`
	LearningRoadmap   []LearningResource `json:"learningRoadmap"`
}

// JobRecommendation is a suggested role with its skill analysis.
// MatchPercentage is advisory only and is never recomputed client-side.
type JobRecommendation struct {
	Role            string     `json:"role"`
	Company         string     `json:"company"`
	Location        string     `json:"location"`
	Description     string     `json:"description"`
	MatchPercentage int        `json:"matchPercentage"`
	MatchingSkills  []string   `json:"matchingSkills"`
	SkillsToLearn   []SkillGap `json:"skillsToLearn"`
}

// AnalysisResult is the full career analysis produced by the model.
// It is produced atomically, immutable once stored, and replaced
// wholesale on re-analysis.
type AnalysisResult struct {
	Summary            string              `json:"summary"`
	ExtractedSkills    []string            `json:"extractedSkills"`
	DomainStrength     string              `json:"domainStrength"`
	ExperienceLevel    string              `json:"experienceLevel"`
	JobRecommendations []JobRecommendation `json:"jobRecommendations"`
}

// Job returns the recommendation at index i, comma-ok.
func (a *AnalysisResult) Job(i int) (JobRecommendation, bool) {
	if a == nil || i < 0 || i >= len(a.JobRecommendations) {
		return JobRecommendation{}, false
	}
	return a.JobRecommendations[i], true
}

// AllSkillGaps flattens the skill gaps across every recommendation,
// preserving recommendation order then gap order.
func (a *AnalysisResult) AllSkillGaps() []SkillGap {
	if a == nil {
		return nil
	}
	var gaps []SkillGap
	for _, job := range a.JobRecommendations {
		gaps = append(gaps, job.SkillsToLearn...)
	}
	return gaps
}

// NormalizeSkills trims and de-duplicates a user-supplied skill list,
// preserving first-seen order.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		trimmed := strings.TrimSpace(s)
		key := strings.ToLower(trimmed)
		if trimmed == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}
