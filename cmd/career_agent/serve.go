package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rithwika/career-advisor/internal/app"
	"github.com/rithwika/career-advisor/internal/config"
	"github.com/rithwika/career-advisor/internal/gateway"
	"github.com/rithwika/career-advisor/internal/llm"
	"github.com/rithwika/career-advisor/internal/server"
)

var (
	serveConfigPath string
	servePort       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes session-scoped REST endpoints for analysis, navigation, progress tracking, chat, and report export.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by environment)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := llm.NewClient(context.Background(), &llm.Config{Model: cfg.Model}, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	var advisor app.Advisor = gateway.New(client)

	srv, err := server.New(server.Config{Port: cfg.Port}, advisor)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// loadConfig merges an optional JSON config file with the environment.
func loadConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	return cfg.MergeWithEnv()
}
