package corpus

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/types"
)

const defaultSourceTimeout = 10 * time.Second

// Provider fetches job listings from one source: the platform database,
// an external aggregator feed, a partner ATS.
type Provider interface {
	// Name identifies the source in logs and per-source errors.
	Name() string
	// Fetch returns the listings the source currently has for the
	// given criteria.
	Fetch(ctx context.Context, criteria *types.RankCriteria) ([]types.JobListing, error)
}

// Aggregator fans a fetch out to every provider concurrently and merges
// the results.
type Aggregator struct {
	providers []Provider
	timeout   time.Duration
	logger    *zap.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithTimeout caps how long each provider may take before its partial
// contribution is abandoned.
func WithTimeout(d time.Duration) Option {
	return func(a *Aggregator) { a.timeout = d }
}

// WithLogger sets the logger used to report skipped sources.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Aggregator) { a.logger = logger }
}

// NewAggregator builds an Aggregator over the given providers.
func NewAggregator(providers []Provider, opts ...Option) *Aggregator {
	a := &Aggregator{
		providers: providers,
		timeout:   defaultSourceTimeout,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// FetchAll queries every provider concurrently. A failing provider is
// logged and skipped; listings seen from an earlier-configured source
// win duplicate IDs. An error is returned only when every provider
// failed, so callers always get the best corpus available.
func (a *Aggregator) FetchAll(ctx context.Context, criteria *types.RankCriteria) ([]types.JobListing, error) {
	if len(a.providers) == 0 {
		return nil, nil
	}

	results := make([][]types.JobListing, len(a.providers))
	failures := make([]*SourceError, len(a.providers))

	g, gctx := errgroup.WithContext(ctx)
	for i, provider := range a.providers {
		i, provider := i, provider
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(gctx, a.timeout)
			defer cancel()

			listings, err := provider.Fetch(fetchCtx, criteria)
			if err != nil {
				failures[i] = &SourceError{Source: provider.Name(), Cause: err}
				a.logger.Warn("job source failed, skipping",
					zap.String("source", provider.Name()),
					zap.Error(err))
				return nil
			}
			results[i] = listings
			return nil
		})
	}
	// Goroutines record failures instead of returning them so one bad
	// source cannot cancel the rest of the group.
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := mergeListings(results)
	if len(merged) == 0 {
		if errs := collectFailures(failures); len(errs) == len(a.providers) {
			return nil, &AggregateError{Errors: errs}
		}
	}
	return merged, nil
}

// mergeListings flattens per-provider results, dropping duplicate IDs.
func mergeListings(results [][]types.JobListing) []types.JobListing {
	seen := make(map[string]bool)
	var merged []types.JobListing
	for _, listings := range results {
		for _, job := range listings {
			if job.ID != "" && seen[job.ID] {
				continue
			}
			seen[job.ID] = true
			merged = append(merged, job)
		}
	}
	return merged
}

func collectFailures(failures []*SourceError) []*SourceError {
	var errs []*SourceError
	for _, f := range failures {
		if f != nil {
			errs = append(errs, f)
		}
	}
	return errs
}
