package export

import (
	_ "embed"
	"html/template"
	"strings"
	"time"

	"github.com/rithwika/career-advisor/internal/types"
)

//go:embed report.html.tmpl
var reportTemplate string

// Report holds everything the roadmap report template needs.
type Report struct {
	Candidate       string
	Summary         string
	ExperienceLevel string
	Job             types.JobRecommendation
	Progress        int
	GeneratedAt     string

	completed map[string]bool
}

// NewReport assembles a report for one recommended job. The completed
// slice carries learning-resource identifiers that render struck out.
func NewReport(candidate string, result *types.AnalysisResult, job types.JobRecommendation, completed []string, progress int) *Report {
	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}
	report := &Report{
		Candidate:   candidate,
		Job:         job,
		Progress:    progress,
		GeneratedAt: time.Now().Format("January 2, 2006"),
		completed:   done,
	}
	if result != nil {
		report.Summary = result.Summary
		report.ExperienceLevel = result.ExperienceLevel
	}
	return report
}

// RenderHTML executes the report template.
func RenderHTML(report *Report) (string, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"done": func(r types.LearningResource) bool {
			return report.completed[r.ID()]
		},
	}).Parse(reportTemplate)
	if err != nil {
		return "", &TemplateError{
			Message: "failed to parse report template",
			Cause:   err,
		}
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, report); err != nil {
		return "", &TemplateError{
			Message: "failed to execute report template",
			Cause:   err,
		}
	}
	return result.String(), nil
}
