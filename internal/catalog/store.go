// internal/catalog/store.go
package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/everupward248/hackathon-oct25/internal/common/database"
	commonerrors "github.com/everupward248/hackathon-oct25/internal/common/errors"
	"github.com/everupward248/hackathon-oct25/internal/common/logger"
	"github.com/everupward248/hackathon-oct25/internal/models"
)

// Store reads the job catalog from Postgres. Salary and experience data
// live in their own tables keyed by job_post_id, so every read is the
// three-way join.
type Store struct {
	db     *database.PostgresClient
	logger logger.Logger
}

// NewStore creates a catalog store backed by the given Postgres client.
func NewStore(db *database.PostgresClient, log logger.Logger) *Store {
	return &Store{db: db, logger: log}
}

const baseQuery = `
	SELECT j.id, j.job_title, j.employer, j.location, j.occupation, j.industry,
	       e.required_education_level, e.years_experience,
	       r.description, r.annualised_min, r.annualised_max
	FROM jobs AS j
	JOIN renumerations AS r ON r.job_post_id = j.job_post_id
	JOIN experiences AS e ON e.job_post_id = j.job_post_id`

// ListJobs returns the full catalog.
func (s *Store) ListJobs(ctx context.Context) ([]models.Job, error) {
	rows, err := s.db.Query(ctx, baseQuery+` ORDER BY j.id`)
	if err != nil {
		return nil, commonerrors.NewQueryExecutionError("list jobs", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// GetJob returns a single job by ID.
func (s *Store) GetJob(ctx context.Context, id string) (*models.Job, error) {
	row := s.db.QueryRow(ctx, baseQuery+` WHERE j.id = $1`, id)

	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, commonerrors.NewResourceNotFoundError("job", id)
	}
	if err != nil {
		return nil, commonerrors.NewQueryExecutionError("get job", err)
	}
	return job, nil
}

// JobsByIndustry returns the catalog subset for one industry, matched
// case-insensitively.
func (s *Store) JobsByIndustry(ctx context.Context, industry string) ([]models.Job, error) {
	rows, err := s.db.Query(ctx, baseQuery+` WHERE LOWER(j.industry) = LOWER($1) ORDER BY j.id`, industry)
	if err != nil {
		return nil, commonerrors.NewQueryExecutionError("jobs by industry", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

func scanJobs(rows *sql.Rows) ([]models.Job, error) {
	var jobs []models.Job
	for rows.Next() {
		var job models.Job
		var company, description sql.NullString
		if err := rows.Scan(
			&job.ID, &job.Title, &company, &job.Location, &job.Occupation, &job.Industry,
			&job.EducationLevel, &job.ExperienceYears,
			&description, &job.SalaryMin, &job.SalaryMax,
		); err != nil {
			return nil, commonerrors.NewQueryExecutionError("scan job row", err)
		}
		job.Company = company.String
		job.Description = description.String
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, commonerrors.NewQueryExecutionError("iterate job rows", err)
	}
	return jobs, nil
}

func scanJob(row *sql.Row) (*models.Job, error) {
	var job models.Job
	var company, description sql.NullString
	if err := row.Scan(
		&job.ID, &job.Title, &company, &job.Location, &job.Occupation, &job.Industry,
		&job.EducationLevel, &job.ExperienceYears,
		&description, &job.SalaryMin, &job.SalaryMax,
	); err != nil {
		return nil, err
	}
	job.Company = company.String
	job.Description = description.String
	return &job, nil
}
