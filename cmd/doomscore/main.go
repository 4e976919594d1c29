// Package main provides the entry point for the doomscore HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "doomscore",
	Short: "AI job-doom calculator API server",
	Long:  "doomscore scores how likely a job title or LinkedIn profile is to be displaced by AI, via keyword heuristics, a hash fallback, or an LLM, and serves the result as a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
