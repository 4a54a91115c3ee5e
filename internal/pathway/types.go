// internal/pathway/types.go
package pathway

// SalaryRange bounds a step's advertised salary.
type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Step is one role on the way to the target, with what it takes to get
// there.
type Step struct {
	Role              string      `json:"role"`
	SalaryRange       SalaryRange `json:"salaryRange"`
	RequiredEducation []string    `json:"requiredEducation"`
	RequiredSkills    []string    `json:"requiredSkills"`
	TimeToAchieve     string      `json:"timeToAchieve"`
	CostOfEducation   float64     `json:"costOfEducation"`
}

// Pathway is a full progression from the user's current role (possibly
// none) to a target job, final step included.
type Pathway struct {
	CurrentRole           string  `json:"currentRole,omitempty"`
	TargetRole            string  `json:"targetRole"`
	Steps                 []Step  `json:"intermediateSteps"`
	Timeline              string  `json:"timeline"`
	TotalEducationCost    float64 `json:"totalCostOfEducation"`
	EstimatedSalaryGrowth float64 `json:"estimatedSalaryGrowth"`
}

// EducationRecommendation suggests a concrete program that would close
// part of a skills gap.
type EducationRecommendation struct {
	Type          string  `json:"type"` // certification, course, degree
	Name          string  `json:"name"`
	EstimatedCost float64 `json:"estimatedCost"`
	EstimatedTime string  `json:"estimatedTime"`
	Priority      string  `json:"priority"` // high, medium, low
}

// SkillsGap compares the user's skills against everything the pathway
// requires.
type SkillsGap struct {
	CurrentSkills            []string                  `json:"currentSkills"`
	RequiredSkills           []string                  `json:"requiredSkills"`
	MissingSkills            []string                  `json:"missingSkills"`
	EducationRecommendations []EducationRecommendation `json:"educationRecommendations"`
}

// Projection is one simulated year of the pathway.
type Projection struct {
	Year                   int     `json:"year"`
	Age                    int     `json:"age"`
	Role                   string  `json:"role"`
	Salary                 float64 `json:"salary"`
	CumulativeIncome       float64 `json:"cumulativeIncome"`
	EducationCost          float64 `json:"educationCost"`
	CumulativeCost         float64 `json:"cumulativeCost"`
	NetGain                float64 `json:"netGain"`
	LifestyleAffordability bool    `json:"lifestyleAffordability"`
	LifestyleCost          float64 `json:"lifestyleCost,omitempty"`
}

// Metrics summarizes a projected pathway for side-by-side comparison.
type Metrics struct {
	TotalDuration            string  `json:"totalDuration"`
	TotalEducationCost       float64 `json:"totalEducationCost"`
	SalaryIncrease           float64 `json:"salaryIncrease"`
	SalaryIncreasePercentage float64 `json:"salaryIncreasePercentage"`
	BreakEvenPoint           string  `json:"breakEvenPoint"`
	ROI                      float64 `json:"roi"`
	Difficulty               string  `json:"difficulty"`   // Low, Medium, High
	MarketDemand             string  `json:"marketDemand"` // Low, Medium, High
}
