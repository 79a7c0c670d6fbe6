package repository

import (
	"context"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

type StatusRepository interface {
	// InitDefaults inserts an active status for every email that has none.
	InitDefaults(ctx context.Context, emails []string) error
	SetIsActive(ctx context.Context, email string, isActive bool) (*domain.InternStatus, error)
	GetByEmails(ctx context.Context, emails []string) (map[string]bool, error)
}
