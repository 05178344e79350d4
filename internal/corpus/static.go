package corpus

import (
	"context"

	"github.com/jonathan/job-matcher/internal/types"
)

// StaticProvider serves a fixed in-memory set of listings. It backs the
// offline CLI path, where jobs come from a local JSON file.
type StaticProvider struct {
	name     string
	listings []types.JobListing
}

// NewStaticProvider wraps a fixed listing set as a Provider.
func NewStaticProvider(name string, listings []types.JobListing) *StaticProvider {
	return &StaticProvider{name: name, listings: listings}
}

// Name identifies the static source.
func (p *StaticProvider) Name() string { return p.name }

// Fetch returns a copy of the fixed listing set.
func (p *StaticProvider) Fetch(_ context.Context, _ *types.RankCriteria) ([]types.JobListing, error) {
	out := make([]types.JobListing, len(p.listings))
	copy(out, p.listings)
	return out, nil
}
