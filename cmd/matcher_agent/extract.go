package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/extraction"
	"github.com/jonathan/job-matcher/internal/ingestion"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/schemas"
)

var extractSignalsCmd = &cobra.Command{
	Use:   "extract-signals",
	Short: "Extract candidate signals from a resume file",
	Long:  "Extract skills, experience, education, certifications and contact info from a resume text or HTML file and emit them as JSON.",
	RunE:  runExtractSignals,
}

var (
	extractResumeFile string
	extractOutFile    string
	extractVerbose    bool
)

func init() {
	extractSignalsCmd.Flags().StringVarP(&extractResumeFile, "resume", "r", "", "Path to resume text or HTML file (required)")
	extractSignalsCmd.Flags().StringVarP(&extractOutFile, "out", "o", "", "Output JSON file (default: stdout)")
	extractSignalsCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a formatted extraction summary")

	extractSignalsCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(extractSignalsCmd)
}

func runExtractSignals(cmd *cobra.Command, args []string) error {
	cleanedText, _, err := ingestion.IngestFromFile(extractResumeFile)
	if err != nil {
		return fmt.Errorf("failed to ingest resume: %w", err)
	}

	signals := extraction.Extract(cleanedText)

	jsonBytes, err := json.MarshalIndent(signals, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal signals: %w", err)
	}
	if err := schemas.ValidateCandidateSignals(jsonBytes); err != nil {
		return fmt.Errorf("extracted signals failed schema validation: %w", err)
	}

	if extractVerbose {
		observability.NewPrinter(os.Stderr).PrintCandidateSignals(signals)
	}

	if extractOutFile == "" {
		fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(extractOutFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Wrote candidate signals to %s\n", extractOutFile)
	return nil
}
