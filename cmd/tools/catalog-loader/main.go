// cmd/tools/catalog-loader/main.go
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/everupward248/hackathon-oct25/internal/common/config"
	"github.com/everupward248/hackathon-oct25/internal/common/database"
	"github.com/everupward248/hackathon-oct25/internal/models"
)

// DDL for the three catalog tables. Salary and experience live apart
// from the posting itself, keyed by job_post_id.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS jobs (
	id          TEXT PRIMARY KEY,
	job_post_id TEXT NOT NULL UNIQUE,
	job_title   TEXT NOT NULL,
	employer    TEXT,
	location    TEXT NOT NULL,
	occupation  TEXT,
	industry    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS renumerations (
	job_post_id    TEXT NOT NULL REFERENCES jobs (job_post_id) ON DELETE CASCADE,
	description    TEXT,
	annualised_min NUMERIC NOT NULL,
	annualised_max NUMERIC NOT NULL
);

CREATE TABLE IF NOT EXISTS experiences (
	job_post_id              TEXT NOT NULL REFERENCES jobs (job_post_id) ON DELETE CASCADE,
	required_education_level TEXT NOT NULL,
	years_experience         TEXT NOT NULL
);
`

func main() {
	filePath := flag.String("file", "", "Path to the jobs JSON file (array of job objects)")
	configPath := flag.String("config", "", "Optional path to a config YAML (defaults to the standard search paths)")
	truncate := flag.Bool("truncate", false, "Delete existing catalog rows before loading")
	flag.Parse()

	if *filePath == "" {
		fmt.Println("Error: -file is required.")
		flag.Usage()
		os.Exit(1)
	}

	jobs, err := readJobsFile(*filePath)
	if err != nil {
		fmt.Printf("Error reading jobs file: %v\n", err)
		os.Exit(1)
	}
	if len(jobs) == 0 {
		fmt.Println("Error: jobs file contains no jobs.")
		os.Exit(1)
	}

	var cfg *config.Config
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		fmt.Printf("Error connecting to PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pg.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := pg.Ping(ctx); err != nil {
		fmt.Printf("Error pinging PostgreSQL: %v\n", err)
		os.Exit(1)
	}

	inserted, err := loadCatalog(ctx, pg.DB, jobs, *truncate)
	if err != nil {
		fmt.Printf("Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Loaded %d jobs into the catalog.\n", inserted)
}

func readJobsFile(path string) ([]models.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var jobs []models.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("invalid jobs JSON: %w", err)
	}
	return jobs, nil
}

// loadCatalog inserts all jobs inside a single transaction so a bad row
// leaves the catalog untouched.
func loadCatalog(ctx context.Context, db *sql.DB, jobs []models.Job, truncate bool) (int, error) {
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		return 0, fmt.Errorf("failed to ensure schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if truncate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM jobs`); err != nil {
			return 0, fmt.Errorf("failed to clear existing catalog: %w", err)
		}
	}

	for i, job := range jobs {
		if job.Title == "" || job.Location == "" || job.Industry == "" {
			return 0, fmt.Errorf("job %d is missing title, location, or industry", i)
		}

		id := job.ID
		if id == "" {
			id = uuid.NewString()
		}
		postID := uuid.NewString()

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO jobs (id, job_post_id, job_title, employer, location, occupation, industry)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			id, postID, job.Title, job.Company, job.Location, job.Occupation, job.Industry,
		); err != nil {
			return 0, fmt.Errorf("failed to insert job %q: %w", job.Title, err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO renumerations (job_post_id, description, annualised_min, annualised_max)
			 VALUES ($1, $2, $3, $4)`,
			postID, job.Description, job.SalaryMin, job.SalaryMax,
		); err != nil {
			return 0, fmt.Errorf("failed to insert salary for %q: %w", job.Title, err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO experiences (job_post_id, required_education_level, years_experience)
			 VALUES ($1, $2, $3)`,
			postID, job.EducationLevel, job.ExperienceYears,
		); err != nil {
			return 0, fmt.Errorf("failed to insert experience for %q: %w", job.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	return len(jobs), nil
}
