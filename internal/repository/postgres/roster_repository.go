package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

type rosterRepository struct {
	db *sql.DB
}

func NewRosterRepository(db *sql.DB) *rosterRepository {
	return &rosterRepository{db: db}
}

func (r *rosterRepository) ReplaceInterns(ctx context.Context, interns []domain.Intern) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM interns`); err != nil {
		return err
	}
	if err := insertInterns(ctx, tx, interns); err != nil {
		return err
	}

	return tx.Commit()
}

func insertInterns(ctx context.Context, exec DBExecutor, interns []domain.Intern) error {
	query := `
		INSERT INTO interns (email, full_name, affiliation, gender, contact_number)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, intern := range interns {
		_, err := exec.ExecContext(ctx, query,
			intern.Email,
			intern.FullName,
			intern.Affiliation,
			intern.Gender,
			intern.ContactNumber,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *rosterRepository) ReplaceTechLeads(ctx context.Context, leads []domain.TechLead) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tech_leads`); err != nil {
		return err
	}
	if err := insertTechLeads(ctx, tx, leads); err != nil {
		return err
	}

	return tx.Commit()
}

func insertTechLeads(ctx context.Context, exec DBExecutor, leads []domain.TechLead) error {
	query := `
		INSERT INTO tech_leads (email, full_name, affiliation, gender, contact_number, capacity)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, lead := range leads {
		_, err := exec.ExecContext(ctx, query,
			lead.Email,
			lead.FullName,
			lead.Affiliation,
			lead.Gender,
			lead.ContactNumber,
			lead.Capacity,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *rosterRepository) GetInternByEmail(ctx context.Context, email string) (*domain.Intern, error) {
	query := `
		SELECT email, full_name, affiliation, gender, contact_number
		FROM interns
		WHERE email = $1
	`

	intern := &domain.Intern{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&intern.Email,
		&intern.FullName,
		&intern.Affiliation,
		&intern.Gender,
		&intern.ContactNumber,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("intern not found")
		}
		return nil, err
	}

	return intern, nil
}

func (r *rosterRepository) GetTechLeadByEmail(ctx context.Context, email string) (*domain.TechLead, error) {
	query := `
		SELECT email, full_name, affiliation, gender, contact_number, capacity
		FROM tech_leads
		WHERE email = $1
	`

	lead := &domain.TechLead{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&lead.Email,
		&lead.FullName,
		&lead.Affiliation,
		&lead.Gender,
		&lead.ContactNumber,
		&lead.Capacity,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("tech lead not found")
		}
		return nil, err
	}

	return lead, nil
}
