package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockAssignmentRepository) GetLatest(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockAssignmentRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockRosterRepository struct {
	mock.Mock
}

func (m *MockRosterRepository) ReplaceInterns(ctx context.Context, interns []domain.Intern) error {
	args := m.Called(ctx, interns)
	return args.Error(0)
}

func (m *MockRosterRepository) ReplaceTechLeads(ctx context.Context, leads []domain.TechLead) error {
	args := m.Called(ctx, leads)
	return args.Error(0)
}

func (m *MockRosterRepository) GetInternByEmail(ctx context.Context, email string) (*domain.Intern, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Intern), args.Error(1)
}

func (m *MockRosterRepository) GetTechLeadByEmail(ctx context.Context, email string) (*domain.TechLead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TechLead), args.Error(1)
}

type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) InitDefaults(ctx context.Context, emails []string) error {
	args := m.Called(ctx, emails)
	return args.Error(0)
}

func (m *MockStatusRepository) SetIsActive(ctx context.Context, email string, isActive bool) (*domain.InternStatus, error) {
	args := m.Called(ctx, email, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InternStatus), args.Error(1)
}

func (m *MockStatusRepository) GetByEmails(ctx context.Context, emails []string) (map[string]bool, error) {
	args := m.Called(ctx, emails)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Overview(ctx context.Context) (*domain.OverviewStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OverviewStats), args.Error(1)
}

type MockRosterSource struct {
	mock.Mock
}

func (m *MockRosterSource) Load() ([]domain.Intern, []domain.TechLead, error) {
	args := m.Called()
	var interns []domain.Intern
	var leads []domain.TechLead
	if args.Get(0) != nil {
		interns = args.Get(0).([]domain.Intern)
	}
	if args.Get(1) != nil {
		leads = args.Get(1).([]domain.TechLead)
	}
	return interns, leads, args.Error(2)
}
