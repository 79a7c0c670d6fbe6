package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestRosterRepository_ReplaceInterns(t *testing.T) {
	t.Run("replaces the table in one transaction", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRosterRepository(db)

		interns := []domain.Intern{
			{Email: "a@x.edu", FullName: "A", Affiliation: "x", Gender: "F", ContactNumber: "1"},
			{Email: "b@x.edu", FullName: "B", Affiliation: "x", Gender: "M", ContactNumber: "2"},
		}

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM interns").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO interns").
			WithArgs("a@x.edu", "A", "x", "F", "1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO interns").
			WithArgs("b@x.edu", "B", "x", "M", "2").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.ReplaceInterns(context.Background(), interns)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRosterRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM interns").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO interns").WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := repo.ReplaceInterns(context.Background(), []domain.Intern{{Email: "a@x.edu", FullName: "A", Affiliation: "x"}})

		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRosterRepository_ReplaceTechLeads(t *testing.T) {
	t.Run("stores the capacity column", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRosterRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM tech_leads").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO tech_leads").
			WithArgs("lead@x.edu", "Lead", "x", "F", "1", 5).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.ReplaceTechLeads(context.Background(), []domain.TechLead{
			{Email: "lead@x.edu", FullName: "Lead", Affiliation: "x", Gender: "F", ContactNumber: "1", Capacity: 5},
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRosterRepository_GetInternByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRosterRepository(db)

		rows := sqlmock.NewRows([]string{"email", "full_name", "affiliation", "gender", "contact_number"}).
			AddRow("a@x.edu", "A", "x", "F", "1")
		mock.ExpectQuery("SELECT email, full_name, affiliation, gender, contact_number").
			WithArgs("a@x.edu").
			WillReturnRows(rows)

		intern, err := repo.GetInternByEmail(context.Background(), "a@x.edu")

		require.NoError(t, err)
		assert.Equal(t, "A", intern.FullName)
		assert.Equal(t, "x", intern.Affiliation)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRosterRepository(db)

		mock.ExpectQuery("SELECT email, full_name, affiliation, gender, contact_number").
			WithArgs("ghost@x.edu").
			WillReturnError(sql.ErrNoRows)

		intern, err := repo.GetInternByEmail(context.Background(), "ghost@x.edu")

		require.Error(t, err)
		assert.Nil(t, intern)
		assert.EqualError(t, err, "intern not found")
	})
}

func TestRosterRepository_GetTechLeadByEmail(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRosterRepository(db)

		mock.ExpectQuery("SELECT email, full_name, affiliation, gender, contact_number, capacity").
			WithArgs("ghost@x.edu").
			WillReturnError(sql.ErrNoRows)

		lead, err := repo.GetTechLeadByEmail(context.Background(), "ghost@x.edu")

		require.Error(t, err)
		assert.Nil(t, lead)
		assert.EqualError(t, err, "tech lead not found")
	})
}
