package repository

import (
	"context"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

type RosterRepository interface {
	ReplaceInterns(ctx context.Context, interns []domain.Intern) error
	ReplaceTechLeads(ctx context.Context, leads []domain.TechLead) error
	GetInternByEmail(ctx context.Context, email string) (*domain.Intern, error)
	GetTechLeadByEmail(ctx context.Context, email string) (*domain.TechLead, error)
}
