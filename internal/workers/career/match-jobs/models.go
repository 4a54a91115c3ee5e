// internal/workers/career/match-jobs/models.go
package matchjobs

import (
	"github.com/everupward248/hackathon-oct25/internal/matching"
	"github.com/everupward248/hackathon-oct25/internal/models"
)

type Input struct {
	AssessmentID string           `json:"assessmentId"`
	Profile      matching.Profile `json:"profile"`

	// Jobs overrides the catalog when present; otherwise the worker
	// reads from the catalog provider, optionally narrowed by industry.
	Jobs     []models.Job `json:"jobs,omitempty"`
	Industry string       `json:"industry,omitempty"`
}

type Output struct {
	AssessmentID string               `json:"assessmentId"`
	Matches      []matching.ScoredJob `json:"matches"`
	TotalScored  int                  `json:"totalScored"`
}
