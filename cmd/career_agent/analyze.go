package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rithwika/career-advisor/internal/export"
	"github.com/rithwika/career-advisor/internal/gateway"
	"github.com/rithwika/career-advisor/internal/ingestion"
	"github.com/rithwika/career-advisor/internal/llm"
	"github.com/rithwika/career-advisor/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume or skill list",
	Long: `Run a one-shot career analysis over a resume file, raw resume text, or a comma-separated skill list.

Exactly one of --resume, --text, or --skills must be provided. The analysis prints the recommended roles; --export renders the roadmap for one role to a PDF file.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeResume     string
	analyzeText       string
	analyzeSkills     string
	analyzeExtract    bool
	analyzeInsights   bool
	analyzeJobIndex   int
	analyzeExport     string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to a resume document (pdf, docx, or txt)")
	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "Raw resume text")
	analyzeCmd.Flags().StringVarP(&analyzeSkills, "skills", "s", "", "Comma-separated skill list")
	analyzeCmd.Flags().BoolVar(&analyzeExtract, "extract", false, "Extract text from the resume document locally and submit it as plain text")
	analyzeCmd.Flags().BoolVar(&analyzeInsights, "insights", false, "Also fetch market insights for the detected domain")
	analyzeCmd.Flags().IntVar(&analyzeJobIndex, "job", 0, "Recommended job index for roadmap output")
	analyzeCmd.Flags().StringVar(&analyzeExport, "export", "", "Write the selected job's roadmap report to this PDF path")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	input, err := buildProfileInput()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(analyzeConfigPath)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY)")
	}

	client, err := llm.NewClient(ctx, &llm.Config{Model: cfg.Model}, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	advisor := gateway.New(client)

	result, err := advisor.AnalyzeProfile(ctx, input)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysis(result)
	printer.PrintJobs(result)

	job, ok := result.Job(analyzeJobIndex)
	if !ok {
		return fmt.Errorf("job index %d is out of range (%d recommendations)", analyzeJobIndex, len(result.JobRecommendations))
	}
	if analyzeVerbose {
		printer.PrintRoadmap(job, nil, 0)
	}

	if analyzeInsights {
		insights, err := advisor.MarketInsights(ctx, result.DomainStrength)
		if err != nil {
			return err
		}
		printer.PrintInsights(insights)
	}

	if analyzeExport != "" {
		report := export.NewReport("", result, job, nil, 0)
		html, err := export.RenderHTML(report)
		if err != nil {
			return err
		}
		pdf, err := export.PrintPDFSimple(ctx, html)
		if err != nil {
			return err
		}
		if err := os.WriteFile(analyzeExport, pdf, 0644); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		fmt.Printf("Roadmap report written to %s\n", analyzeExport)
	}

	return nil
}

// buildProfileInput maps the mutually exclusive input flags to a ProfileInput.
func buildProfileInput() (gateway.ProfileInput, error) {
	set := 0
	for _, flag := range []string{analyzeResume, analyzeText, analyzeSkills} {
		if flag != "" {
			set++
		}
	}
	if set != 1 {
		return gateway.ProfileInput{}, fmt.Errorf("exactly one of --resume, --text, or --skills is required")
	}

	switch {
	case analyzeResume != "":
		payload, err := ingestion.ReadFile(analyzeResume)
		if err != nil {
			return gateway.ProfileInput{}, err
		}
		// Plain text documents always go to the model as text; binary
		// formats are parsed locally only when --extract asks for it,
		// and otherwise ship as an inline document part.
		if analyzeExtract || payload.MIMEType == ingestion.MIMEText {
			text, err := ingestion.ExtractText(payload)
			if err != nil {
				return gateway.ProfileInput{}, err
			}
			return gateway.ResumeText(text), nil
		}
		return gateway.ResumeDocument(payload.Data, payload.MIMEType), nil
	case analyzeText != "":
		return gateway.ResumeText(analyzeText), nil
	default:
		skills := strings.Split(analyzeSkills, ",")
		return gateway.SkillList(skills), nil
	}
}
