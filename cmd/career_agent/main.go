// Package main provides the entry point for the Career Advisor CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "Career Advisor",
	Long:  "Career Advisor analyzes a resume or skill list with Gemini and produces job recommendations, learning roadmaps, and market insights, served over a REST API or directly from the CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
