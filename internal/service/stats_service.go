package service

import (
	"context"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

type StatsService interface {
	Overview(ctx context.Context) (*domain.OverviewStats, error)
}
