package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/doomscore/internal/analysis"
	"github.com/jonathan/doomscore/internal/observability"
	"github.com/jonathan/doomscore/internal/types"
)

var (
	analyzeTitle  string
	analyzeURL    string
	analyzeConfig string
	analyzeJSON   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one doom analysis from the terminal",
	Long:  `Analyze a job title or a LinkedIn profile URL without starting the server and print the result.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "Job title to analyze")
	analyzeCmd.Flags().StringVar(&analyzeURL, "url", "", "LinkedIn profile URL to analyze")
	analyzeCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to a JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the raw result JSON instead of the formatted summary")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if (analyzeTitle == "") == (analyzeURL == "") {
		return fmt.Errorf("exactly one of --title or --url is required")
	}

	cfg, err := loadConfig(analyzeConfig)
	if err != nil {
		return err
	}

	analyzer, err := analysis.FromConfig(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = analyzer.Close() }()

	ctx := context.Background()
	var result *types.AnalyzeResponse
	if analyzeTitle != "" {
		result = analyzer.AnalyzeJobTitle(ctx, analyzeTitle)
	} else {
		result = analyzer.AnalyzeProfile(ctx, analyzeURL)
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	observability.NewPrinter(os.Stdout).PrintResult(result)
	return nil
}
