// internal/pathway/generator.go
package pathway

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/everupward248/hackathon-oct25/internal/models"
)

// Salary thresholds driving step generation. A gap over the threshold is
// split into one step per increment of progression.
const (
	salaryGapThreshold    = 30000
	salaryStepIncrement   = 20000
	intermediateTolerance = 15000
	avgYearsPerStep       = 2.5
)

// Request holds the inputs to pathway generation. Only the target job is
// required; the current position fields refine the starting point.
type Request struct {
	CurrentRole   string   `json:"currentRole,omitempty"`
	CurrentSalary float64  `json:"currentSalary,omitempty"`
	CurrentSkills []string `json:"currentSkills,omitempty"`
}

// Generate builds a career pathway from the user's position to the target
// job, inserting intermediate roles from the catalog when the salary gap
// is too large to bridge directly.
func Generate(target models.Job, catalog []models.Job, req Request) Pathway {
	targetAvg := target.AvgSalary()

	startingSalary := req.CurrentSalary
	if startingSalary == 0 {
		startingSalary = target.SalaryMin * 0.5
	}

	var steps []Step

	salaryGap := targetAvg - startingSalary
	if salaryGap > salaryGapThreshold {
		numSteps := int(math.Ceil(salaryGap / salaryStepIncrement))
		increment := salaryGap / float64(numSteps)

		for i := 0; i < numSteps-1; i++ {
			stepSalary := startingSalary + increment*float64(i+1)
			job, ok := findIntermediateJob(catalog, target.Industry, stepSalary, target.Occupation)
			if !ok {
				continue
			}

			cost := estimateEducationCost(job.EducationLevel)
			if i == 0 {
				cost = 0 // first move builds on current education
			}
			steps = append(steps, newStep(job, fmt.Sprintf("%d-%d years", 1+i, 2+i), cost))
		}
	}

	finalWindow := "2-4 years"
	if len(steps) > 0 {
		finalWindow = fmt.Sprintf("%d-%d years", len(steps)+1, len(steps)+3)
	}
	steps = append(steps, newStep(target, finalWindow, estimateEducationCost(target.EducationLevel)))

	var totalCost float64
	for _, s := range steps {
		totalCost += s.CostOfEducation
	}

	return Pathway{
		CurrentRole:           req.CurrentRole,
		TargetRole:            target.Title,
		Steps:                 steps,
		Timeline:              fmt.Sprintf("%d years", int(math.Ceil(float64(len(steps))*avgYearsPerStep))),
		TotalEducationCost:    totalCost,
		EstimatedSalaryGrowth: targetAvg - startingSalary,
	}
}

// findIntermediateJob picks a stepping-stone role near the given salary.
// Same-industry roles in a different occupation come first, closest salary
// winning; if none qualify the search broadens to any industry and takes
// the first hit in catalog order.
func findIntermediateJob(catalog []models.Job, industry string, salary float64, occupation string) (models.Job, bool) {
	var candidates []models.Job
	for _, job := range catalog {
		if job.Industry == industry &&
			math.Abs(job.AvgSalary()-salary) < intermediateTolerance &&
			job.Occupation != occupation {
			candidates = append(candidates, job)
		}
	}

	if len(candidates) == 0 {
		for _, job := range catalog {
			if math.Abs(job.AvgSalary()-salary) < intermediateTolerance {
				return job, true
			}
		}
		return models.Job{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return math.Abs(candidates[i].AvgSalary()-salary) < math.Abs(candidates[j].AvgSalary()-salary)
	})
	return candidates[0], true
}

func newStep(job models.Job, window string, educationCost float64) Step {
	return Step{
		Role:              job.Title,
		SalaryRange:       SalaryRange{Min: job.SalaryMin, Max: job.SalaryMax},
		RequiredEducation: []string{job.EducationLevel},
		RequiredSkills:    skillsForJob(job),
		TimeToAchieve:     window,
		CostOfEducation:   educationCost,
	}
}

// estimateEducationCost maps an education label to a rough program cost.
// Labels are free text, so matching is by substring.
func estimateEducationCost(educationLevel string) float64 {
	switch {
	case strings.Contains(educationLevel, "Doctoral"):
		return 80000
	case strings.Contains(educationLevel, "Master"):
		return 45000
	case strings.Contains(educationLevel, "Bachelor"):
		return 30000
	case strings.Contains(educationLevel, "Associate"):
		return 15000
	case strings.Contains(educationLevel, "Certification"):
		return 5000
	default:
		return 0
	}
}
