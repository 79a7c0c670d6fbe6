package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
	"github.com/yash-u-12/grouping-l1-l2/internal/repository"
	"github.com/yash-u-12/grouping-l1-l2/internal/roster"
)

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	rosterRepo     repository.RosterRepository
	statusRepo     repository.StatusRepository
	rosters        RosterSource
	seed           int64
	exportDir      string
	logger         *zap.Logger
}

// NewAssignmentService wires the assignment lifecycle: load rosters,
// compute, persist, export. exportDir may be empty to skip file exports.
func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	rosterRepo repository.RosterRepository,
	statusRepo repository.StatusRepository,
	rosters RosterSource,
	seed int64,
	exportDir string,
	logger *zap.Logger,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		rosterRepo:     rosterRepo,
		statusRepo:     statusRepo,
		rosters:        rosters,
		seed:           seed,
		exportDir:      exportDir,
		logger:         logger,
	}
}

func (s *assignmentService) GetOrCompute(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := s.assignmentRepo.GetLatest(ctx)
	if err == nil {
		return snapshot, nil
	}
	if !errors.Is(err, domain.ErrNoSnapshot) {
		return nil, err
	}
	return s.compute(ctx)
}

func (s *assignmentService) Recompute(ctx context.Context) (*domain.Snapshot, error) {
	if err := s.assignmentRepo.DeleteAll(ctx); err != nil {
		return nil, err
	}
	return s.compute(ctx)
}

func (s *assignmentService) compute(ctx context.Context) (*domain.Snapshot, error) {
	interns, leads, err := s.rosters.Load()
	if err != nil {
		return nil, err
	}

	result := ComputeAssignments(interns, leads, s.seed)

	snapshot := &domain.Snapshot{
		ID:        uuid.New(),
		Seed:      s.seed,
		CreatedAt: time.Now(),
		Result:    result,
	}

	if err := s.rosterRepo.ReplaceInterns(ctx, interns); err != nil {
		return nil, err
	}
	if err := s.rosterRepo.ReplaceTechLeads(ctx, leads); err != nil {
		return nil, err
	}
	if err := s.assignmentRepo.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(interns))
	for _, intern := range interns {
		emails = append(emails, intern.Email)
	}
	if err := s.statusRepo.InitDefaults(ctx, emails); err != nil {
		return nil, err
	}

	if s.exportDir != "" {
		if err := roster.ExportUnassigned(s.exportDir, snapshot); err != nil {
			// The snapshot is already durable; a failed file export is not
			// worth failing the run over.
			s.logger.Warn("unassigned export failed", zap.Error(err))
		}
	}

	s.logger.Info("assignment computed",
		zap.String("snapshot_id", snapshot.ID.String()),
		zap.Int64("seed", snapshot.Seed),
		zap.Int("interns", len(interns)),
		zap.Int("tech_leads", len(leads)),
		zap.Int("assigned_leads", len(result.Assignments)),
		zap.Int("unassigned_interns", len(result.UnassignedInterns)),
		zap.Int("unassigned_tech_leads", len(result.UnassignedTechLeads)),
	)

	return snapshot, nil
}

func (s *assignmentService) Lookup(ctx context.Context, email string) (*domain.LeadView, error) {
	normalized := domain.Normalize(email)
	if normalized == "" {
		return nil, domain.NewBadRequestError("email is required")
	}

	snapshot, err := s.GetOrCompute(ctx)
	if err != nil {
		return nil, err
	}

	groups := snapshot.GroupsFor(normalized)
	if groups == nil {
		return nil, domain.NewNotFoundError("assignment for tech lead " + normalized)
	}

	lead, err := s.rosterRepo.GetTechLeadByEmail(ctx, normalized)
	if err != nil {
		if err.Error() == "tech lead not found" {
			// Assignment exists but the roster row is gone: data mismatch,
			// not a plain miss.
			return nil, domain.ErrRosterMismatch
		}
		return nil, err
	}

	emails := make([]string, 0, len(groups)*domain.GroupSize)
	for _, group := range groups {
		emails = append(emails, group.MemberEmails()...)
	}

	statuses, err := s.statusRepo.GetByEmails(ctx, emails)
	if err != nil {
		return nil, err
	}

	view := &domain.LeadView{
		Lead:     *lead,
		Groups:   groups,
		Statuses: make(map[string]bool, len(emails)),
	}
	for _, memberEmail := range emails {
		active, ok := statuses[memberEmail]
		if !ok {
			// Missing status rows count as active, same default as the
			// initializer.
			active = true
		}
		view.Statuses[memberEmail] = active
		if active {
			view.Active++
		} else {
			view.Inactive++
		}
	}

	return view, nil
}
