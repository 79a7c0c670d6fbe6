package service

import (
	"context"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

type StatusService interface {
	// SetStatus flips an intern's active flag. Last write wins.
	SetStatus(ctx context.Context, email string, isActive bool) (*domain.InternStatus, error)
}
