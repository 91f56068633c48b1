// Package seed generates and writes synthetic customers, profiles and orders
// for development environments.
package seed

import (
	"context"
	"time"

	"github.com/Barento999/ecommerce-spa-sub001/entity"
)

// Outcome classifies how a single customer was processed.
type Outcome string

const (
	OutcomeCreated Outcome = "created" // new account and profile
	OutcomeReused  Outcome = "reused"  // account already existed, profile untouched
	OutcomeSkipped Outcome = "skipped" // no usable account; no orders written
	OutcomeFailed  Outcome = "failed"  // account usable but an order write failed
)

// CustomerResult is the per-customer result collected by the workflow driver.
type CustomerResult struct {
	Email    string
	UID      string
	Outcome  Outcome
	OrderIDs []string
	Err      error
}

// Summary aggregates one workflow run.
type Summary struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Results    []CustomerResult
}

// Count returns the number of results with the given outcome.
func (s *Summary) Count(o Outcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

// Orders returns the total number of orders written.
func (s *Summary) Orders() int {
	n := 0
	for _, r := range s.Results {
		n += len(r.OrderIDs)
	}
	return n
}

// Service runs the seeding workflow.
type Service interface {
	// Run processes customers sequentially. Per-customer failures are recorded
	// in the summary and never stop the run.
	Run(ctx context.Context, customers []entity.CustomerSeed) *Summary
}
