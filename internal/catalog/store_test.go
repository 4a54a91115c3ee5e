// internal/catalog/store_test.go
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everupward248/hackathon-oct25/internal/common/database"
	commonerrors "github.com/everupward248/hackathon-oct25/internal/common/errors"
	"github.com/everupward248/hackathon-oct25/internal/common/logger"
)

var jobColumns = []string{
	"id", "job_title", "employer", "location", "occupation", "industry",
	"required_education_level", "years_experience",
	"description", "annualised_min", "annualised_max",
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := NewStore(&database.PostgresClient{DB: db}, logger.NewTestLogger(t))
	return store, mock
}

func TestStore_ListJobs(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM jobs AS j").
		WillReturnRows(sqlmock.NewRows(jobColumns).
			AddRow("j1", "Financial Analyst", "Island Finance", "George Town", "Analyst", "Financial Services",
				"Bachelor's Degree", "2-3 years", "Analyze things", 55000.0, 70000.0).
			AddRow("j2", "Sous Chef", nil, "West Bay", "Chef", "Tourism & Hospitality",
				"Certificate/Diploma", "2-3 years", nil, 38000.0, 48000.0))

	jobs, err := store.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "j1", jobs[0].ID)
	assert.Equal(t, "Financial Analyst", jobs[0].Title)
	assert.Equal(t, 62500.0, jobs[0].AvgSalary())

	// null employer and description scan as empty strings
	assert.Empty(t, jobs[1].Company)
	assert.Empty(t, jobs[1].Description)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListJobs_QueryError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM jobs AS j").
		WillReturnError(assert.AnError)

	_, err := store.ListJobs(context.Background())
	require.Error(t, err)
	assert.Equal(t, commonerrors.ErrCodeQueryExecutionFailed, commonerrors.Code(err))
}

func TestStore_GetJob(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery("SELECT (.+) WHERE j.id = \\$1").
			WithArgs("j1").
			WillReturnRows(sqlmock.NewRows(jobColumns).
				AddRow("j1", "Financial Analyst", "Island Finance", "George Town", "Analyst", "Financial Services",
					"Bachelor's Degree", "2-3 years", "", 55000.0, 70000.0))

		job, err := store.GetJob(context.Background(), "j1")
		require.NoError(t, err)
		assert.Equal(t, "Financial Analyst", job.Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery("SELECT (.+) WHERE j.id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(jobColumns))

		_, err := store.GetJob(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, commonerrors.IsNotFound(err))
	})

	t.Run("wrapped no-rows still classifies as not found", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery("SELECT (.+) WHERE j.id = \\$1").
			WithArgs("missing").
			WillReturnError(fmt.Errorf("scan job: %w", sql.ErrNoRows))

		_, err := store.GetJob(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, commonerrors.IsNotFound(err))
	})
}

func TestStore_JobsByIndustry(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) WHERE LOWER\\(j.industry\\) = LOWER\\(\\$1\\)").
		WithArgs("healthcare").
		WillReturnRows(sqlmock.NewRows(jobColumns).
			AddRow("n1", "Registered Nurse", "Health City", "East End", "Nurse", "Healthcare",
				"Bachelor's Degree", "2-3 years", "", 55000.0, 65000.0))

	jobs, err := store.JobsByIndustry(context.Background(), "healthcare")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Registered Nurse", jobs[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
