// internal/workers/assessment/calculate-lifestyle-cost/models.go
package calculatelifestylecost

import "github.com/everupward248/hackathon-oct25/internal/lifestyle"

type Input struct {
	AssessmentID    string           `json:"assessmentId"`
	LifestyleConfig lifestyle.Config `json:"lifestyleConfig"`
	TargetSalaryMin float64          `json:"targetSalaryMin,omitempty"`
	TargetSalaryMax float64          `json:"targetSalaryMax,omitempty"`
}

type Output struct {
	AssessmentID          string                   `json:"assessmentId"`
	CostResult            *lifestyle.CostResult    `json:"costResult"`
	RequiredAnnualSalary  float64                  `json:"requiredAnnualSalary"`
	FormattedMonthlyTotal string                   `json:"formattedMonthlyTotal"`
	Affordability         *lifestyle.Affordability `json:"affordability,omitempty"`
	Suggestions           []string                 `json:"suggestions,omitempty"`
}
