// internal/workers/career/generate-pathway/models.go
package generatepathway

import (
	"github.com/everupward248/hackathon-oct25/internal/models"
	"github.com/everupward248/hackathon-oct25/internal/pathway"
)

type Input struct {
	AssessmentID string `json:"assessmentId"`
	TargetJobID  string `json:"targetJobId"`

	// Jobs overrides the catalog when present.
	Jobs []models.Job `json:"jobs,omitempty"`

	CurrentRole   string   `json:"currentRole,omitempty"`
	CurrentSalary float64  `json:"currentSalary,omitempty"`
	CurrentSkills []string `json:"currentSkills,omitempty"`
	CurrentAge    int      `json:"currentAge,omitempty"`
	LifestyleCost float64  `json:"lifestyleCost,omitempty"`

	// IncludeOptions asks for the fast/standard/gradual variants on top
	// of the standard pathway.
	IncludeOptions bool `json:"includeOptions,omitempty"`
}

type Output struct {
	AssessmentID string               `json:"assessmentId"`
	Pathway      pathway.Pathway      `json:"pathway"`
	Options      []pathway.Pathway    `json:"options,omitempty"`
	SkillsGap    pathway.SkillsGap    `json:"skillsGap"`
	Projections  []pathway.Projection `json:"projections"`
	Metrics      pathway.Metrics      `json:"metrics"`
}
