package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/extraction"
	"github.com/jonathan/job-matcher/internal/ingestion"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/semantic"
	"github.com/jonathan/job-matcher/internal/store"
	"github.com/jonathan/job-matcher/internal/types"
)

var rankJobsCmd = &cobra.Command{
	Use:   "rank-jobs",
	Short: "Rank job listings against a candidate",
	Long:  "Rank a corpus of job listings against a candidate's extracted signals, fusing semantic relevance, recency, liveness and personalization into a single ordering.",
	RunE:  runRankJobs,
}

var (
	rankResumeFile  string
	rankJobsFile    string
	rankConfigFile  string
	rankCandidateID string
	rankLocation    string
	rankWorkType    string
	rankIndustry    string
	rankSalary      float64
	rankLimit       int
	rankOutFile     string
	rankVerbose     bool
)

func init() {
	rankJobsCmd.Flags().StringVarP(&rankResumeFile, "resume", "r", "", "Path to resume text or HTML file (required)")
	rankJobsCmd.Flags().StringVarP(&rankJobsFile, "jobs", "j", "", "Path to JSON file with job listings")
	rankJobsCmd.Flags().StringVarP(&rankConfigFile, "config", "c", "", "Path to JSON config file")
	rankJobsCmd.Flags().StringVar(&rankCandidateID, "candidate-id", "", "Candidate identifier (default: generated)")
	rankJobsCmd.Flags().StringVar(&rankLocation, "location", "", "Preferred location, e.g. \"Austin, TX\"")
	rankJobsCmd.Flags().StringVar(&rankWorkType, "work-type", "", "Preferred work type: remote, hybrid or onsite")
	rankJobsCmd.Flags().StringVar(&rankIndustry, "industry", "", "Preferred industry")
	rankJobsCmd.Flags().Float64Var(&rankSalary, "salary", 0, "Salary expectation")
	rankJobsCmd.Flags().IntVar(&rankLimit, "limit", 0, "Maximum matches to return")
	rankJobsCmd.Flags().StringVarP(&rankOutFile, "out", "o", "", "Output JSON file (default: stdout)")
	rankJobsCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a formatted match summary")

	rankJobsCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(rankJobsCmd)
}

func runRankJobs(cmd *cobra.Command, args []string) error {
	cfg, err := loadRankConfig()
	if err != nil {
		return err
	}

	criteria, signals, err := buildCriteria()
	if err != nil {
		return err
	}
	if criteria.Limit == 0 {
		criteria.Limit = cfg.TopN
	}

	providers, cleanup, err := buildProviders(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	if len(providers) == 0 {
		return fmt.Errorf("no job sources configured; provide --jobs or set database_url")
	}

	scorer := buildScorer(cmd, cfg)

	engine := ranking.NewEngine(
		corpus.NewAggregator(providers),
		scorer,
		ranking.WithCache(ranking.NewMatchCache(
			time.Duration(cfg.CacheTTLSeconds)*time.Second, cfg.CacheCapacity)),
		ranking.WithScorerTimeout(time.Duration(cfg.ScorerTimeoutSeconds)*time.Second),
	)

	matches, err := engine.Rank(cmd.Context(), criteria)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal matches: %w", err)
	}
	if len(matches) > 0 {
		if err := schemas.ValidateJobMatches(jsonBytes); err != nil {
			return fmt.Errorf("ranked matches failed schema validation: %w", err)
		}
	}

	if rankVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintCandidateSignals(signals)
		printer.PrintMatches(matches)
	}

	if rankOutFile == "" {
		fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(rankOutFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %d matches to %s\n", len(matches), rankOutFile)
	return nil
}

func loadRankConfig() (config.Config, error) {
	defaults := config.Config{
		Model:                "gemini-2.5-flash-lite",
		TopN:                 50,
		CacheTTLSeconds:      60,
		CacheCapacity:        200,
		ScorerTimeoutSeconds: 5,
	}

	cfg := config.Config{APIKey: os.Getenv("GEMINI_API_KEY"), DatabaseURL: os.Getenv("DATABASE_URL")}
	if rankConfigFile != "" {
		loaded, err := config.LoadConfig(rankConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*loaded)
	}
	return cfg.MergeWithDefaults(defaults), nil
}

// buildCriteria extracts signals from the resume and combines them with
// the preference flags.
func buildCriteria() (*types.RankCriteria, *types.CandidateSignals, error) {
	cleanedText, _, err := ingestion.IngestFromFile(rankResumeFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to ingest resume: %w", err)
	}
	signals := extraction.Extract(cleanedText)

	candidateID := rankCandidateID
	if candidateID == "" {
		candidateID = uuid.NewString()
	}

	return &types.RankCriteria{
		CandidateID:       candidateID,
		Skills:            signals.AllSkills(),
		ExperienceLevel:   signals.ExperienceLevel,
		Location:          rankLocation,
		WorkType:          types.WorkType(rankWorkType),
		Industry:          rankIndustry,
		SalaryExpectation: rankSalary,
		ResumeText:        cleanedText,
		Limit:             rankLimit,
	}, signals, nil
}

// buildProviders assembles the corpus sources: a static file corpus, a
// platform database, or both.
func buildProviders(cmd *cobra.Command, cfg config.Config) ([]corpus.Provider, func(), error) {
	var providers []corpus.Provider
	cleanup := func() {}

	if rankJobsFile != "" {
		listings, err := loadListings(rankJobsFile)
		if err != nil {
			return nil, cleanup, err
		}
		providers = append(providers, corpus.NewStaticProvider("file", listings))
	}

	if cfg.DatabaseURL != "" {
		st, err := store.Connect(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to connect to database: %w", err)
		}
		cleanup = st.Close
		providers = append(providers, st)
	}

	return providers, cleanup, nil
}

// buildScorer prefers the Gemini scorer and falls back to keyword
// overlap when no API key is configured.
func buildScorer(cmd *cobra.Command, cfg config.Config) semantic.Scorer {
	if cfg.APIKey == "" {
		return semantic.NewOverlapScorer()
	}
	scorer, err := semantic.NewGeminiScorer(cmd.Context(), cfg.APIKey, cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; falling back to overlap scorer\n", err)
		return semantic.NewOverlapScorer()
	}
	return scorer
}

func loadListings(path string) ([]types.JobListing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file: %w", err)
	}
	var listings []types.JobListing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("failed to parse jobs file: %w", err)
	}
	return listings, nil
}
