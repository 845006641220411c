// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/rithwika/career-advisor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of the career analysis.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Domain:      %s\n", result.DomainStrength))
	sb.WriteString(fmt.Sprintf("Experience:  %s\n", result.ExperienceLevel))
	sb.WriteString("\n")

	summary := result.Summary
	if len(summary) > 50 {
		summary = summary[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("%s\n", summary))

	if len(result.ExtractedSkills) > 0 {
		sb.WriteString("\nExtracted Skills:\n")
		count := min(len(result.ExtractedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.ExtractedSkills[i]))
		}
		if len(result.ExtractedSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.ExtractedSkills)-maxItemsToShow))
		}
	}

	sb.WriteString(fmt.Sprintf("\nRecommended roles: %d", len(result.JobRecommendations)))

	p.printBox("CAREER ANALYSIS", sb.String())
}

// PrintJobs outputs the recommended roles with match scores.
func (p *Printer) PrintJobs(result *types.AnalysisResult) {
	if result == nil || len(result.JobRecommendations) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(result.JobRecommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := result.JobRecommendations[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, job.Role))
		sb.WriteString(fmt.Sprintf("    %s", job.Company))
		if job.Location != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", job.Location))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Match: %d%%", job.MatchPercentage))
		if len(job.SkillsToLearn) > 0 {
			sb.WriteString(fmt.Sprintf("  Gaps: %d", len(job.SkillsToLearn)))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.JobRecommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more roles", len(result.JobRecommendations)-maxItemsToShow))
	}

	p.printBox("RECOMMENDED ROLES", sb.String())
}

// PrintRoadmap outputs the learning roadmap for one job with completion markers.
func (p *Printer) PrintRoadmap(job types.JobRecommendation, completed []string, progress int) {
	if len(job.SkillsToLearn) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SKILL GAPS FOR THIS ROLE")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s  (%d%% complete)\n\n", job.Role, progress))

	for i, gap := range job.SkillsToLearn {
		sb.WriteString(fmt.Sprintf("%s (%s)\n", gap.Skill, gap.EstimatedTimeline))
		for _, resource := range gap.LearningRoadmap {
			marker := "☐"
			if done[resource.ID()] {
				marker = "✓"
			}
			title := resource.Title
			if len(title) > 45 {
				title = title[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s %s\n", marker, title))
		}
		if i < len(job.SkillsToLearn)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LEARNING ROADMAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInsights outputs the market insights snapshot.
func (p *Printer) PrintInsights(insights *types.MarketInsights) {
	if insights == nil {
		return
	}

	var sb strings.Builder

	summary := insights.Summary
	if len(summary) > 50 {
		summary = summary[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("%s\n", summary))

	if len(insights.TrendingSkills) > 0 {
		sb.WriteString("\nTrending Skills:\n")
		count := min(len(insights.TrendingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", insights.TrendingSkills[i]))
		}
		if len(insights.TrendingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(insights.TrendingSkills)-maxItemsToShow))
		}
	}

	if insights.SalaryRanges != "" {
		sb.WriteString(fmt.Sprintf("\nSalaries: %s\n", insights.SalaryRanges))
	}

	if len(insights.HiringCompanies) > 0 {
		sb.WriteString("\nHiring:\n")
		count := min(len(insights.HiringCompanies), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", insights.HiringCompanies[i]))
		}
		if len(insights.HiringCompanies) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(insights.HiringCompanies)-3))
		}
	}

	p.printBox("MARKET INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}
