package repository

import (
	"context"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

type AssignmentRepository interface {
	SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) error
	GetLatest(ctx context.Context) (*domain.Snapshot, error)
	DeleteAll(ctx context.Context) error
}
