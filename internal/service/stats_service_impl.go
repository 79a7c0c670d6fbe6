package service

import (
	"context"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
	"github.com/yash-u-12/grouping-l1-l2/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) Overview(ctx context.Context) (*domain.OverviewStats, error) {
	stats, err := s.statsRepo.Overview(ctx)
	if err != nil {
		if err.Error() == "no snapshot" {
			return nil, domain.ErrNoSnapshot
		}
		return nil, err
	}
	return stats, nil
}
