package service

import (
	"context"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

// RosterSource loads both rosters for a compute run.
type RosterSource interface {
	Load() ([]domain.Intern, []domain.TechLead, error)
}

type AssignmentService interface {
	// GetOrCompute returns the latest snapshot, computing and persisting
	// one from the rosters when none exists yet.
	GetOrCompute(ctx context.Context) (*domain.Snapshot, error)

	// Recompute drops prior snapshots and runs a fresh pass.
	Recompute(ctx context.Context) (*domain.Snapshot, error)

	// Lookup returns a tech lead's detail, groups and intern statuses.
	Lookup(ctx context.Context, email string) (*domain.LeadView, error)
}
