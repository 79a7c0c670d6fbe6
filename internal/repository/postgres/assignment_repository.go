package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

type assignmentRepository struct {
	db *sql.DB
}

func NewAssignmentRepository(db *sql.DB) *assignmentRepository {
	return &assignmentRepository{db: db}
}

// SaveSnapshot persists one compute run atomically: the snapshot row, the
// assigned groups with their members, and both unassigned lists.
func (r *assignmentRepository) SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, seed, created_at) VALUES ($1, $2, $3)`,
		snapshot.ID, snapshot.Seed, snapshot.CreatedAt,
	)
	if err != nil {
		return err
	}

	groupQuery := `
		INSERT INTO groups (snapshot_id, affiliation, ordinal, lead_email, slot)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	memberQuery := `
		INSERT INTO group_members (group_id, position, email, full_name, affiliation, gender, contact_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, assignment := range snapshot.Result.Assignments {
		for slot, group := range assignment.Groups {
			var groupID int
			err := tx.QueryRowContext(ctx, groupQuery,
				snapshot.ID,
				group.Affiliation,
				group.Ordinal,
				assignment.Lead.Email,
				slot,
			).Scan(&groupID)
			if err != nil {
				return err
			}

			for position, member := range group.Members {
				_, err := tx.ExecContext(ctx, memberQuery,
					groupID,
					position,
					member.Email,
					member.FullName,
					member.Affiliation,
					member.Gender,
					member.ContactNumber,
				)
				if err != nil {
					return err
				}
			}
		}
	}

	if err := insertUnassignedInterns(ctx, tx, snapshot); err != nil {
		return err
	}
	if err := insertUnassignedTechLeads(ctx, tx, snapshot); err != nil {
		return err
	}

	return tx.Commit()
}

func insertUnassignedInterns(ctx context.Context, exec DBExecutor, snapshot *domain.Snapshot) error {
	query := `
		INSERT INTO unassigned_interns (snapshot_id, position, email, full_name, affiliation, gender, contact_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for position, intern := range snapshot.Result.UnassignedInterns {
		_, err := exec.ExecContext(ctx, query,
			snapshot.ID,
			position,
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

func insertUnassignedTechLeads(ctx context.Context, exec DBExecutor, snapshot *domain.Snapshot) error {
	query := `
		INSERT INTO unassigned_tech_leads (snapshot_id, position, email, full_name, affiliation, gender, contact_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for position, lead := range snapshot.Result.UnassignedTechLeads {
		_, err := exec.ExecContext(ctx, query,
			snapshot.ID,
			position,
			lead.Email,
			lead.FullName,
			lead.Affiliation,
			lead.Gender,
			lead.ContactNumber,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *assignmentRepository) GetLatest(ctx context.Context) (*domain.Snapshot, error) {
	snapshot := &domain.Snapshot{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, seed, created_at FROM snapshots ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&snapshot.ID, &snapshot.Seed, &snapshot.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoSnapshot
		}
		return nil, err
	}

	if err := r.loadAssignments(ctx, snapshot); err != nil {
		return nil, err
	}

	snapshot.Result.UnassignedInterns, err = r.loadUnassignedInterns(ctx, snapshot.ID)
	if err != nil {
		return nil, err
	}
	snapshot.Result.UnassignedTechLeads, err = r.loadUnassignedTechLeads(ctx, snapshot.ID)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *assignmentRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM snapshots`)
	return err
}

// loadAssignments rebuilds the ordered lead assignments. Group id order is
// insertion order, which is assignment order, so leads come back in the
// order they first received a group.
func (r *assignmentRepository) loadAssignments(ctx context.Context, snapshot *domain.Snapshot) error {
	groupQuery := `
		SELECT g.id, g.affiliation, g.ordinal, g.lead_email,
		       t.full_name, t.affiliation, t.gender, t.contact_number, t.capacity
		FROM groups g
		LEFT JOIN tech_leads t ON t.email = g.lead_email
		WHERE g.snapshot_id = $1
		ORDER BY g.id
	`

	rows, err := r.db.QueryContext(ctx, groupQuery, snapshot.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	// Positions instead of pointers: appends below may reallocate the
	// Groups slices.
	type groupPos struct {
		lead int
		slot int
	}
	groupIndex := make(map[int]groupPos)
	leadIndex := make(map[string]int)
	for rows.Next() {
		var (
			groupID   int
			group     domain.Group
			leadEmail string
			fullName  sql.NullString
			leadAff   sql.NullString
			gender    sql.NullString
			contact   sql.NullString
			capacity  sql.NullInt64
		)
		err := rows.Scan(&groupID, &group.Affiliation, &group.Ordinal, &leadEmail,
			&fullName, &leadAff, &gender, &contact, &capacity)
		if err != nil {
			return err
		}

		idx, ok := leadIndex[leadEmail]
		if !ok {
			lead := domain.TechLead{Email: leadEmail, Capacity: domain.LeadCapacity}
			if fullName.Valid {
				lead.FullName = fullName.String
				lead.Affiliation = leadAff.String
				lead.Gender = gender.String
				lead.ContactNumber = contact.String
				lead.Capacity = int(capacity.Int64)
			}
			snapshot.Result.Assignments = append(snapshot.Result.Assignments, domain.LeadAssignment{Lead: lead})
			idx = len(snapshot.Result.Assignments) - 1
			leadIndex[leadEmail] = idx
		}

		snapshot.Result.Assignments[idx].Groups = append(snapshot.Result.Assignments[idx].Groups, group)
		groupIndex[groupID] = groupPos{lead: idx, slot: len(snapshot.Result.Assignments[idx].Groups) - 1}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	memberQuery := `
		SELECT m.group_id, m.email, m.full_name, m.affiliation, m.gender, m.contact_number
		FROM group_members m
		JOIN groups g ON g.id = m.group_id
		WHERE g.snapshot_id = $1
		ORDER BY m.group_id, m.position
	`

	memberRows, err := r.db.QueryContext(ctx, memberQuery, snapshot.ID)
	if err != nil {
		return err
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var groupID int
		var member domain.Intern
		err := memberRows.Scan(&groupID, &member.Email, &member.FullName,
			&member.Affiliation, &member.Gender, &member.ContactNumber)
		if err != nil {
			return err
		}
		if pos, ok := groupIndex[groupID]; ok {
			group := &snapshot.Result.Assignments[pos.lead].Groups[pos.slot]
			group.Members = append(group.Members, member)
		}
	}

	return memberRows.Err()
}

func (r *assignmentRepository) loadUnassignedInterns(ctx context.Context, snapshotID uuid.UUID) ([]domain.Intern, error) {
	query := `
		SELECT email, full_name, affiliation, gender, contact_number
		FROM unassigned_interns
		WHERE snapshot_id = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interns []domain.Intern
	for rows.Next() {
		var intern domain.Intern
		err := rows.Scan(&intern.Email, &intern.FullName, &intern.Affiliation,
			&intern.Gender, &intern.ContactNumber)
		if err != nil {
			return nil, err
		}
		interns = append(interns, intern)
	}

	return interns, rows.Err()
}

func (r *assignmentRepository) loadUnassignedTechLeads(ctx context.Context, snapshotID uuid.UUID) ([]domain.TechLead, error) {
	query := `
		SELECT email, full_name, affiliation, gender, contact_number
		FROM unassigned_tech_leads
		WHERE snapshot_id = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []domain.TechLead
	for rows.Next() {
		lead := domain.TechLead{Capacity: domain.LeadCapacity}
		err := rows.Scan(&lead.Email, &lead.FullName, &lead.Affiliation,
			&lead.Gender, &lead.ContactNumber)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}
