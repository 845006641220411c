package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rithwika/career-advisor/internal/gateway"
	"github.com/rithwika/career-advisor/internal/llm"
	"github.com/rithwika/career-advisor/internal/observability"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Fetch market insights for a career domain",
	Long:  `Fetch hiring trend, top locations, salary range, and outlook for a career domain such as "Data Science" or "Web Development".`,
	RunE:  runInsights,
}

var (
	insightsConfigPath string
	insightsDomain     string
)

func init() {
	insightsCmd.Flags().StringVar(&insightsConfigPath, "config", "", "Path to config.json file")
	insightsCmd.Flags().StringVarP(&insightsDomain, "domain", "d", "", "Career domain to look up (required)")
	insightsCmd.MarkFlagRequired("domain")
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(insightsConfigPath)
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

	insights, err := advisor.MarketInsights(ctx, insightsDomain)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintInsights(insights)
	return nil
}
