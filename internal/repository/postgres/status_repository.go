package postgres

import (
	"context"
	"database/sql"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

type statusRepository struct {
	db *sql.DB
}

func NewStatusRepository(db *sql.DB) *statusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) InitDefaults(ctx context.Context, emails []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO intern_statuses (email, is_active)
		VALUES ($1, TRUE)
		ON CONFLICT (email) DO NOTHING
	`
	for _, email := range emails {
		if _, err := tx.ExecContext(ctx, query, email); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *statusRepository) SetIsActive(ctx context.Context, email string, isActive bool) (*domain.InternStatus, error) {
	query := `
		INSERT INTO intern_statuses (email, is_active, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (email) DO UPDATE
		SET is_active = EXCLUDED.is_active, updated_at = now()
		RETURNING email, is_active, updated_at
	`

	status := &domain.InternStatus{}
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, email, isActive).Scan(
		&status.Email,
		&status.IsActive,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		status.UpdatedAt = &updatedAt.Time
	}

	return status, nil
}

// GetByEmails reads the whole status table and filters in memory. The
// table tops out at a few thousand rows, one per roster intern.
func (r *statusRepository) GetByEmails(ctx context.Context, emails []string) (map[string]bool, error) {
	statuses := make(map[string]bool, len(emails))
	if len(emails) == 0 {
		return statuses, nil
	}

	wanted := make(map[string]bool, len(emails))
	for _, email := range emails {
		wanted[email] = true
	}

	rows, err := r.db.QueryContext(ctx, `SELECT email, is_active FROM intern_statuses`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var email string
		var isActive bool
		if err := rows.Scan(&email, &isActive); err != nil {
			return nil, err
		}
		if wanted[email] {
			statuses[email] = isActive
		}
	}

	return statuses, rows.Err()
}
