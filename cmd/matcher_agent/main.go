// Package main provides the entry point for the job matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matcher_agent",
	Short: "Resume signal extraction and job ranking",
	Long:  "Matcher agent extracts structured skill and experience signals from free-text resumes and ranks job listings against them with trust-aware hybrid scoring.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
