package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_Overview(t *testing.T) {
	t.Run("aggregates over the latest snapshot", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewStatsRepository(db)

		snapshotID := uuid.New()
		mock.ExpectQuery("SELECT id FROM snapshots").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(snapshotID.String()))
		mock.ExpectQuery("FROM interns").
			WillReturnRows(sqlmock.NewRows([]string{"interns", "tech_leads"}).AddRow(100, 20))
		mock.ExpectQuery("FROM groups g").
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"interns", "leads"}).AddRow(90, 18))
		mock.ExpectQuery("FROM unassigned_interns").
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"interns", "leads"}).AddRow(10, 2))
		mock.ExpectQuery("FROM intern_statuses").
			WillReturnRows(sqlmock.NewRows([]string{"active", "inactive"}).AddRow(95, 5))

		stats, err := repo.Overview(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 100, stats.TotalInterns)
		assert.Equal(t, 90, stats.AssignedInterns)
		assert.Equal(t, 10, stats.UnassignedInterns)
		assert.Equal(t, 20, stats.TotalTechLeads)
		assert.Equal(t, 18, stats.AssignedTechLeads)
		assert.Equal(t, 2, stats.UnassignedTechLeads)
		assert.Equal(t, 95, stats.ActiveInterns)
		assert.Equal(t, 5, stats.InactiveInterns)
	})

	t.Run("no snapshot yet", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewStatsRepository(db)

		mock.ExpectQuery("SELECT id FROM snapshots").WillReturnError(sql.ErrNoRows)

		stats, err := repo.Overview(context.Background())

		require.Error(t, err)
		assert.Nil(t, stats)
		assert.EqualError(t, err, "no snapshot")
	})
}
