// internal/pathway/projection.go
package pathway

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	defaultStartingAge   = 25
	assumedCurrentSalary = 35000
	annualRaiseRate      = 0.03
)

// ProjectFinancials simulates the pathway year by year and derives summary
// metrics. A current role contributes one flat pre-transition year at the
// assumed salary; each step then runs for the upper bound of its time
// window with a 3% raise per year in role. Education costs land in the
// first year of their step.
func ProjectFinancials(p Pathway, currentAge int, lifestyleCost float64) ([]Projection, Metrics) {
	var projections []Projection
	var cumulativeIncome, cumulativeCost float64

	year := 1
	age := currentAge
	if age == 0 {
		age = defaultStartingAge
	}

	startingSalary := 0.0
	if p.CurrentRole != "" {
		startingSalary = assumedCurrentSalary
		cumulativeIncome += startingSalary
		projections = append(projections, Projection{
			Year:                   year,
			Age:                    age,
			Role:                   p.CurrentRole,
			Salary:                 startingSalary,
			CumulativeIncome:       cumulativeIncome,
			CumulativeCost:         cumulativeCost,
			NetGain:                cumulativeIncome - cumulativeCost,
			LifestyleAffordability: lifestyleCost == 0 || startingSalary >= lifestyleCost,
			LifestyleCost:          lifestyleCost,
		})
		year++
		age++
	}

	for _, step := range p.Steps {
		avgSalary := (step.SalaryRange.Min + step.SalaryRange.Max) / 2
		yearsInRole := upperBoundYears(step.TimeToAchieve)
		cumulativeCost += step.CostOfEducation

		for y := 0; y < yearsInRole; y++ {
			salary := avgSalary * (1 + float64(y)*annualRaiseRate)
			cumulativeIncome += salary

			educationCost := 0.0
			if y == 0 {
				educationCost = step.CostOfEducation
			}

			projections = append(projections, Projection{
				Year:                   year,
				Age:                    age,
				Role:                   step.Role,
				Salary:                 salary,
				CumulativeIncome:       cumulativeIncome,
				EducationCost:          educationCost,
				CumulativeCost:         cumulativeCost,
				NetGain:                cumulativeIncome - cumulativeCost,
				LifestyleAffordability: lifestyleCost == 0 || salary >= lifestyleCost,
				LifestyleCost:          lifestyleCost,
			})
			year++
			age++
		}
	}

	return projections, deriveMetrics(p, projections, startingSalary)
}

// upperBoundYears parses the top of a "1-2 years" window, defaulting to 2.
func upperBoundYears(window string) int {
	parts := strings.SplitN(strings.TrimSuffix(window, " years"), "-", 2)
	if len(parts) == 2 {
		if n, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			return n
		}
	}
	return 2
}

func deriveMetrics(p Pathway, projections []Projection, startingSalary float64) Metrics {
	firstSalary := startingSalary
	var lastSalary, finalNetGain float64
	if len(projections) > 0 {
		if projections[0].Salary != 0 {
			firstSalary = projections[0].Salary
		}
		last := projections[len(projections)-1]
		lastSalary = last.Salary
		finalNetGain = last.NetGain
	}

	salaryIncrease := lastSalary - firstSalary
	var increasePct float64
	if firstSalary > 0 {
		increasePct = math.Round(salaryIncrease / firstSalary * 100)
	}

	breakEven := fmt.Sprintf("%d+ years", len(projections)+1)
	for _, proj := range projections {
		if proj.NetGain >= 0 {
			breakEven = fmt.Sprintf("Year %d", proj.Year)
			break
		}
	}

	var roi float64
	if p.TotalEducationCost > 0 {
		roi = math.Round(finalNetGain / p.TotalEducationCost * 100)
	}

	difficulty := "Low"
	switch {
	case p.TotalEducationCost > 50000 || len(projections) > 8:
		difficulty = "High"
	case p.TotalEducationCost > 20000 || len(projections) > 5:
		difficulty = "Medium"
	}

	demand := "Medium"
	if len(p.Steps) > 0 {
		finalRole := strings.ToLower(p.Steps[len(p.Steps)-1].Role)
		if strings.Contains(finalRole, "manager") || strings.Contains(finalRole, "analyst") {
			demand = "High"
		}
	}

	return Metrics{
		TotalDuration:            p.Timeline,
		TotalEducationCost:       p.TotalEducationCost,
		SalaryIncrease:           salaryIncrease,
		SalaryIncreasePercentage: increasePct,
		BreakEvenPoint:           breakEven,
		ROI:                      roi,
		Difficulty:               difficulty,
		MarketDemand:             demand,
	}
}
