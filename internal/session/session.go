// internal/session/session.go

// Package session carries one user's pipeline state across the three
// stages: the lifestyle assessment, the scored matches, and the generated
// pathways. Each stage appends its artifact; nothing is shared between
// assessments.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/everupward248/hackathon-oct25/internal/lifestyle"
	"github.com/everupward248/hackathon-oct25/internal/matching"
	"github.com/everupward248/hackathon-oct25/internal/pathway"
)

// Assessment is the accumulated state of one run through the pipeline.
type Assessment struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	LifestyleConfig *lifestyle.Config     `json:"lifestyleConfig,omitempty"`
	CostResult      *lifestyle.CostResult `json:"costResult,omitempty"`

	Profile *matching.Profile    `json:"profile,omitempty"`
	Matches []matching.ScoredJob `json:"matches,omitempty"`

	SelectedJobID string               `json:"selectedJobId,omitempty"`
	Pathways      []pathway.Pathway    `json:"pathways,omitempty"`
	SkillsGap     *pathway.SkillsGap   `json:"skillsGap,omitempty"`
	Projections   []pathway.Projection `json:"projections,omitempty"`
	Metrics       *pathway.Metrics     `json:"metrics,omitempty"`
}

// New starts an empty assessment with a fresh identity.
func New() *Assessment {
	now := time.Now().UTC()
	return &Assessment{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetCostResult records the stage-one output.
func (a *Assessment) SetCostResult(cfg lifestyle.Config, result *lifestyle.CostResult) {
	a.LifestyleConfig = &cfg
	a.CostResult = result
	a.touch()
}

// SetMatches records the stage-two output.
func (a *Assessment) SetMatches(profile matching.Profile, matches []matching.ScoredJob) {
	a.Profile = &profile
	a.Matches = matches
	a.touch()
}

// SetPathways records the stage-three output for a selected target job.
func (a *Assessment) SetPathways(jobID string, pathways []pathway.Pathway, gap *pathway.SkillsGap, projections []pathway.Projection, metrics *pathway.Metrics) {
	a.SelectedJobID = jobID
	a.Pathways = pathways
	a.SkillsGap = gap
	a.Projections = projections
	a.Metrics = metrics
	a.touch()
}

// TopMatch returns the best-scoring match, if any.
func (a *Assessment) TopMatch() (matching.ScoredJob, bool) {
	if len(a.Matches) == 0 {
		return matching.ScoredJob{}, false
	}
	return a.Matches[0], true
}

// Complete reports whether all three stages have produced output.
func (a *Assessment) Complete() bool {
	return a.CostResult != nil && len(a.Matches) > 0 && len(a.Pathways) > 0
}

func (a *Assessment) touch() {
	a.UpdatedAt = time.Now().UTC()
}
