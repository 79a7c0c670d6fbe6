package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

func TestStatusService_SetStatus(t *testing.T) {
	t.Run("marks a known intern inactive", func(t *testing.T) {
		statusRepo := new(MockStatusRepository)
		rosterRepo := new(MockRosterRepository)
		svc := NewStatusService(statusRepo, rosterRepo)

		intern := &domain.Intern{Email: "dev@college.edu", FullName: "Dev", Affiliation: "college"}
		now := time.Now()
		updated := &domain.InternStatus{Email: "dev@college.edu", IsActive: false, UpdatedAt: &now}

		rosterRepo.On("GetInternByEmail", mock.Anything, "dev@college.edu").Return(intern, nil).Once()
		statusRepo.On("SetIsActive", mock.Anything, "dev@college.edu", false).Return(updated, nil).Once()

		status, err := svc.SetStatus(context.Background(), "Dev@College.edu ", false)

		require.NoError(t, err)
		assert.False(t, status.IsActive)
		assert.Equal(t, "dev@college.edu", status.Email)
		statusRepo.AssertExpectations(t)
		rosterRepo.AssertExpectations(t)
	})

	t.Run("unknown intern email is not found", func(t *testing.T) {
		statusRepo := new(MockStatusRepository)
		rosterRepo := new(MockRosterRepository)
		svc := NewStatusService(statusRepo, rosterRepo)

		rosterRepo.On("GetInternByEmail", mock.Anything, "ghost@college.edu").Return(nil, errors.New("intern not found")).Once()

		status, err := svc.SetStatus(context.Background(), "ghost@college.edu", true)

		require.Error(t, err)
		assert.Nil(t, status)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		statusRepo.AssertNotCalled(t, "SetIsActive")
	})

	t.Run("empty email is a bad request", func(t *testing.T) {
		statusRepo := new(MockStatusRepository)
		rosterRepo := new(MockRosterRepository)
		svc := NewStatusService(statusRepo, rosterRepo)

		status, err := svc.SetStatus(context.Background(), "", true)

		require.Error(t, err)
		assert.Nil(t, status)
		rosterRepo.AssertNotCalled(t, "GetInternByEmail")
	})
}

func TestStatsService_Overview(t *testing.T) {
	t.Run("passes the aggregates through", func(t *testing.T) {
		statsRepo := new(MockStatsRepository)
		svc := NewStatsService(statsRepo)

		expected := &domain.OverviewStats{
			TotalInterns:      100,
			AssignedInterns:   90,
			UnassignedInterns: 10,
			TotalTechLeads:    20,
			AssignedTechLeads: 18,
			ActiveInterns:     95,
			InactiveInterns:   5,
		}
		statsRepo.On("Overview", mock.Anything).Return(expected, nil).Once()

		stats, err := svc.Overview(context.Background())

		require.NoError(t, err)
		assert.Equal(t, expected, stats)
	})

	t.Run("maps a missing snapshot to the domain error", func(t *testing.T) {
		statsRepo := new(MockStatsRepository)
		svc := NewStatsService(statsRepo)

		statsRepo.On("Overview", mock.Anything).Return(nil, errors.New("no snapshot")).Once()

		stats, err := svc.Overview(context.Background())

		require.Error(t, err)
		assert.Nil(t, stats)
		assert.True(t, errors.Is(err, domain.ErrNoSnapshot))
	})
}
