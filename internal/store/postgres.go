// Package store provides PostgreSQL persistence for candidate signals
// and the platform's own job listings.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/job-matcher/internal/types"
)

// fetchLimit caps how many listings one fetch returns. The ranking
// corpus is bounded to the same size, so rows past it are never scored.
const fetchLimit = 500

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// SaveCandidateSignals upserts the extracted signals for a candidate.
func (s *Store) SaveCandidateSignals(ctx context.Context, candidateID uuid.UUID, signals *types.CandidateSignals) error {
	jsonBytes, err := json.Marshal(signals)
	if err != nil {
		return fmt.Errorf("failed to marshal candidate signals: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO candidate_signals (candidate_id, signals, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (candidate_id) DO UPDATE SET signals = $2, updated_at = NOW()`,
		candidateID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save candidate signals: %w", err)
	}
	return nil
}

// GetCandidateSignals loads the stored signals for a candidate. Returns
// nil without error when the candidate has none yet.
func (s *Store) GetCandidateSignals(ctx context.Context, candidateID uuid.UUID) (*types.CandidateSignals, error) {
	var jsonBytes []byte
	err := s.pool.QueryRow(ctx,
		`SELECT signals FROM candidate_signals WHERE candidate_id = $1`,
		candidateID,
	).Scan(&jsonBytes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate signals: %w", err)
	}

	var signals types.CandidateSignals
	if err := json.Unmarshal(jsonBytes, &signals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate signals: %w", err)
	}
	return &signals, nil
}

// Name identifies the platform database as a corpus source.
func (s *Store) Name() string { return "platform" }

// Fetch returns the freshest listings matching the candidate's hard
// preferences. Soft preferences stay unfiltered; personalization
// scoring handles them downstream.
func (s *Store) Fetch(ctx context.Context, criteria *types.RankCriteria) ([]types.JobListing, error) {
	query := `SELECT id, title, company, skills, requirements, description,
	                 location, industry, work_type, salary_min, salary_max,
	                 source, trust_score, liveness_status, last_liveness_check,
	                 posted_at, application_count
	          FROM job_listings
	          WHERE ($1 = '' OR work_type = $1)
	          ORDER BY posted_at DESC
	          LIMIT $2`

	rows, err := s.pool.Query(ctx, query, string(criteria.WorkType), fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query job listings: %w", err)
	}
	defer rows.Close()

	var listings []types.JobListing
	for rows.Next() {
		var j types.JobListing
		err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Skills, &j.Requirements,
			&j.Description, &j.Location, &j.Industry, &j.WorkType, &j.SalaryMin,
			&j.SalaryMax, &j.Source, &j.TrustScore, &j.LivenessStatus,
			&j.LastLivenessCheck, &j.PostedAt, &j.ApplicationCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job listing: %w", err)
		}
		listings = append(listings, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job listings: %w", err)
	}
	return listings, nil
}

// UpdateLiveness records the outcome of a liveness probe for a listing.
func (s *Store) UpdateLiveness(ctx context.Context, jobID string, status types.LivenessStatus) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE job_listings
		 SET liveness_status = $1, last_liveness_check = NOW()
		 WHERE id = $2`,
		string(status), jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to update liveness for %s: %w", jobID, err)
	}
	return nil
}
