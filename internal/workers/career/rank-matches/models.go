// internal/workers/career/rank-matches/models.go
package rankmatches

import "github.com/everupward248/hackathon-oct25/internal/matching"

type Input struct {
	AssessmentID string               `json:"assessmentId"`
	Matches      []matching.ScoredJob `json:"matches"`
	Filters      matching.Filters     `json:"filters,omitempty"`
	SortBy       string               `json:"sortBy,omitempty"` // matchScore, salary, title, company
	Ascending    bool                 `json:"ascending,omitempty"`
	Limit        int                  `json:"limit,omitempty"`
}

type Output struct {
	AssessmentID string               `json:"assessmentId"`
	Matches      []matching.ScoredJob `json:"matches"`
	TotalBefore  int                  `json:"totalBefore"`
	TotalAfter   int                  `json:"totalAfter"`
}
