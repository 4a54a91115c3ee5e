// internal/workers/data-access/query-job-catalog/models.go
package queryjobcatalog

import "github.com/everupward248/hackathon-oct25/internal/models"

// Query types the worker understands.
const (
	QueryAllJobs        = "all_jobs"
	QueryJobByID        = "job_by_id"
	QueryJobsByIndustry = "jobs_by_industry"
)

type Input struct {
	QueryType string `json:"queryType"`
	JobID     string `json:"jobId,omitempty"`
	Industry  string `json:"industry,omitempty"`
}

type Output struct {
	Jobs               []models.Job `json:"jobs"`
	RowCount           int          `json:"rowCount"`
	QueryExecutionTime int64        `json:"queryExecutionTime"` // milliseconds
}
