// Package ranking orders a job corpus for a candidate by fusing
// semantic relevance, recency, source liveness and personalization
// into a single score, with bounded result caching.
package ranking

import (
	"context"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/job-matcher/internal/semantic"
	"github.com/jonathan/job-matcher/internal/types"
)

const (
	// topN bounds the returned list; callers may request fewer via
	// criteria.Limit but never more.
	topN = 50
	// maxCorpus bounds how many of the freshest listings get scored
	// per request.
	maxCorpus = 500

	defaultScorerTimeout  = 5 * time.Second
	defaultScorerParallel = 8
)

// Fetcher supplies the job corpus for one ranking request.
type Fetcher interface {
	FetchAll(ctx context.Context, criteria *types.RankCriteria) ([]types.JobListing, error)
}

// Engine ranks jobs for candidates. Safe for concurrent use; identical
// in-flight requests are deduplicated so the semantic scorer is not
// called twice for the same work.
type Engine struct {
	fetcher  Fetcher
	scorer   semantic.Scorer
	cache    *MatchCache
	validate *validator.Validate
	logger   *zap.Logger
	group    singleflight.Group

	scorerTimeout  time.Duration
	scorerParallel int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithCache replaces the default 60s/200-entry cache.
func WithCache(cache *MatchCache) EngineOption {
	return func(e *Engine) { e.cache = cache }
}

// WithLogger sets the logger used for skipped jobs and sources.
func WithLogger(logger *zap.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// WithScorerTimeout caps each per-job semantic scorer call.
func WithScorerTimeout(d time.Duration) EngineOption {
	return func(e *Engine) { e.scorerTimeout = d }
}

// WithScorerParallelism bounds concurrent scorer calls per request.
func WithScorerParallelism(n int) EngineOption {
	return func(e *Engine) { e.scorerParallel = n }
}

// NewEngine builds a ranking engine over a corpus fetcher and a
// semantic scorer.
func NewEngine(fetcher Fetcher, scorer semantic.Scorer, opts ...EngineOption) *Engine {
	e := &Engine{
		fetcher:        fetcher,
		scorer:         scorer,
		cache:          NewMatchCache(defaultCacheTTL, defaultCacheCapacity),
		validate:       validator.New(),
		logger:         zap.NewNop(),
		scorerTimeout:  defaultScorerTimeout,
		scorerParallel: defaultScorerParallel,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rank returns the candidate's best matches in descending final-score
// order. Results are served from cache when the same criteria were
// ranked within the TTL.
func (e *Engine) Rank(ctx context.Context, criteria *types.RankCriteria) ([]types.EnhancedJobMatch, error) {
	if err := e.validate.Struct(criteria); err != nil {
		return nil, &RankError{Message: "invalid rank criteria", Cause: err}
	}

	key := cacheKey(criteria)
	if matches, ok := e.cache.Get(key); ok {
		return matches, nil
	}

	result, err, _ := e.group.Do(key, func() (any, error) {
		matches, err := e.rankUncached(ctx, criteria)
		if err != nil {
			return nil, err
		}
		e.cache.Put(key, matches)
		return matches, nil
	})
	if err != nil {
		return nil, err
	}

	// Duplicate in-flight callers share one singleflight result; hand
	// each its own copy so none can mutate another's slice.
	shared := result.([]types.EnhancedJobMatch)
	matches := make([]types.EnhancedJobMatch, len(shared))
	copy(matches, shared)
	return matches, nil
}

// InvalidateCandidate drops cached results for a candidate after a
// profile or preference change.
func (e *Engine) InvalidateCandidate(candidateID string) {
	e.cache.InvalidateCandidate(candidateID)
}

func (e *Engine) rankUncached(ctx context.Context, criteria *types.RankCriteria) ([]types.EnhancedJobMatch, error) {
	corpus, err := e.fetcher.FetchAll(ctx, criteria)
	if err != nil {
		return nil, &RankError{Message: "job corpus unavailable", Cause: err}
	}
	corpus = limitCorpus(corpus)

	results := e.scoreJobs(ctx, criteria, corpus)

	now := time.Now()
	matches := make([]types.EnhancedJobMatch, 0, len(results))
	for i, result := range results {
		if result == nil || result.Relevance < qualityFloor {
			continue
		}
		matches = append(matches, e.buildMatch(criteria, &corpus[i], result, now))
	}

	// Stable sort keeps corpus order for equal scores, so ties resolve
	// deterministically.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].FinalScore > matches[j].FinalScore
	})

	limit := topN
	if criteria.Limit > 0 && criteria.Limit < limit {
		limit = criteria.Limit
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// scoreJobs runs the semantic scorer over the corpus in bounded
// parallel. A failed or timed-out job leaves a nil slot and is skipped;
// it never aborts the batch.
func (e *Engine) scoreJobs(ctx context.Context, criteria *types.RankCriteria, corpus []types.JobListing) []*semantic.Result {
	results := make([]*semantic.Result, len(corpus))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.scorerParallel)
	for i := range corpus {
		i := i
		g.Go(func() error {
			scoreCtx, cancel := context.WithTimeout(gctx, e.scorerTimeout)
			defer cancel()

			result, err := e.scorer.Score(scoreCtx, criteria, &corpus[i])
			if err != nil {
				e.logger.Warn("semantic scoring failed, skipping job",
					zap.String("job_id", corpus[i].ID),
					zap.Error(err))
				return nil
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (e *Engine) buildMatch(criteria *types.RankCriteria, job *types.JobListing, result *semantic.Result, now time.Time) types.EnhancedJobMatch {
	recency := recencyScore(job.PostedAt, now)
	liveness, trust := livenessScore(job, now)
	personalization := personalizationScore(criteria, job)

	return types.EnhancedJobMatch{
		JobID:                job.ID,
		Title:                job.Title,
		Company:              job.Company,
		MatchScore:           result.Relevance,
		ConfidenceLevel:      confidenceLevel(result.Relevance),
		SkillMatches:         result.SkillMatches,
		SemanticRelevance:    result.Relevance,
		RecencyScore:         recency,
		LivenessScore:        liveness,
		PersonalizationScore: personalization,
		FinalScore:           fuseScores(result.Relevance, recency, liveness, personalization),
		TrustScore:           trust,
		LivenessStatus:       job.LivenessStatus,
		IsVerifiedActive:     isVerifiedActive(trust, job.LivenessStatus),
		IsDirectFromCompany:  isDirectFromCompany(job.Source),
		CompatibilityFactors: compatibilityFactors(criteria, job),
	}
}

// limitCorpus keeps the most recently posted listings, bounding the
// per-request scoring cost.
func limitCorpus(corpus []types.JobListing) []types.JobListing {
	if len(corpus) <= maxCorpus {
		return corpus
	}
	sorted := make([]types.JobListing, len(corpus))
	copy(sorted, corpus)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PostedAt.After(sorted[j].PostedAt)
	})
	return sorted[:maxCorpus]
}

func confidenceLevel(relevance float64) string {
	switch {
	case relevance >= 0.85:
		return "high"
	case relevance >= 0.7:
		return "medium"
	default:
		return "low"
	}
}
