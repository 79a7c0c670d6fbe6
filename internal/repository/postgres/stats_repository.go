package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Overview(ctx context.Context) (*domain.OverviewStats, error) {
	var snapshotID uuid.UUID
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM snapshots ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&snapshotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("no snapshot")
		}
		return nil, err
	}

	stats := &domain.OverviewStats{}

	err = r.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM interns), (SELECT COUNT(*) FROM tech_leads)`,
	).Scan(&stats.TotalInterns, &stats.TotalTechLeads)
	if err != nil {
		return nil, err
	}

	assignedQuery := `
		SELECT COUNT(m.email), COUNT(DISTINCT g.lead_email)
		FROM groups g
		LEFT JOIN group_members m ON m.group_id = g.id
		WHERE g.snapshot_id = $1
	`
	err = r.db.QueryRowContext(ctx, assignedQuery, snapshotID).
		Scan(&stats.AssignedInterns, &stats.AssignedTechLeads)
	if err != nil {
		return nil, err
	}

	unassignedQuery := `
		SELECT (SELECT COUNT(*) FROM unassigned_interns WHERE snapshot_id = $1),
		       (SELECT COUNT(*) FROM unassigned_tech_leads WHERE snapshot_id = $1)
	`
	err = r.db.QueryRowContext(ctx, unassignedQuery, snapshotID).
		Scan(&stats.UnassignedInterns, &stats.UnassignedTechLeads)
	if err != nil {
		return nil, err
	}

	statusQuery := `
		SELECT COUNT(*) FILTER (WHERE is_active),
		       COUNT(*) FILTER (WHERE NOT is_active)
		FROM intern_statuses
	`
	err = r.db.QueryRowContext(ctx, statusQuery).
		Scan(&stats.ActiveInterns, &stats.InactiveInterns)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
