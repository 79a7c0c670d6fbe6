package service

import (
	"context"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
	"github.com/yash-u-12/grouping-l1-l2/internal/repository"
)

type statusService struct {
	statusRepo repository.StatusRepository
	rosterRepo repository.RosterRepository
}

func NewStatusService(statusRepo repository.StatusRepository, rosterRepo repository.RosterRepository) StatusService {
	return &statusService{
		statusRepo: statusRepo,
		rosterRepo: rosterRepo,
	}
}

func (s *statusService) SetStatus(ctx context.Context, email string, isActive bool) (*domain.InternStatus, error) {
	normalized := domain.Normalize(email)
	if normalized == "" {
		return nil, domain.NewBadRequestError("email is required")
	}

	_, err := s.rosterRepo.GetInternByEmail(ctx, normalized)
	if err != nil {
		if err.Error() == "intern not found" {
			return nil, domain.NewNotFoundError("intern with email " + normalized)
		}
		return nil, err
	}

	status, err := s.statusRepo.SetIsActive(ctx, normalized, isActive)
	if err != nil {
		return nil, err
	}

	return status, nil
}
