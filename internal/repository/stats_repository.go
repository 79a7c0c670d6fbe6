package repository

import (
	"context"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

type StatsRepository interface {
	Overview(ctx context.Context) (*domain.OverviewStats, error)
}
