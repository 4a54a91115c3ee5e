// internal/lifestyle/calculator.go
package lifestyle

import "math"

// CostBreakdown holds per-category amounts plus their total, either
// monthly or annual depending on context.
type CostBreakdown struct {
	Housing        float64 `json:"housing"`
	Utilities      float64 `json:"utilities"`
	Transportation float64 `json:"transportation"`
	Food           float64 `json:"food"`
	Entertainment  float64 `json:"entertainment"`
	Childcare      float64 `json:"childcare"`
	Savings        float64 `json:"savings"`
	Other          float64 `json:"other"`
	Total          float64 `json:"total"`
}

// CostResult is the calculator output: the monthly and annual breakdowns,
// the salary required to sustain them, and each category's share of the
// total.
type CostResult struct {
	Monthly               CostBreakdown      `json:"monthly"`
	Annual                CostBreakdown      `json:"annual"`
	RequiredMonthlySalary float64            `json:"requiredMonthlySalary"`
	RequiredAnnualSalary  float64            `json:"requiredAnnualSalary"`
	BreakdownPercentages  map[string]float64 `json:"breakdownPercentages"`
}

// Calculate maps a lifestyle configuration to its monthly and annual cost.
// Pure: same config in, same result out, no I/O. Amounts accumulate as
// floats and are rounded only when the breakdown is produced, so rounding
// error never compounds across categories.
func Calculate(cfg Config) (*CostResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	housing := housingCosts[housingTier(cfg.Bedrooms, cfg.HousingLocation)].Avg

	// One internet line and one base utility block per household; each
	// person beyond the first adds a mobile line.
	extraLines := cfg.FamilySize - 1
	if extraLines < 0 {
		extraLines = 0
	}
	utilities := utilityBasic.Avg + utilityInternet.Avg + utilityMobile.Avg*float64(extraLines)

	transportation := 0.0
	if cfg.TransportationType == TransportCar || cfg.TransportationType == TransportBoth {
		transportation += totalCar.Avg
	}
	if cfg.TransportationType == TransportPublic || cfg.TransportationType == TransportBoth {
		transportation += publicTransport.Avg * float64(cfg.FamilySize)
	}
	if cfg.TransportationType == TransportPublic && cfg.FamilySize == 1 {
		// Single rider pays the flat rate, never a multiplied one.
		transportation = publicTransport.Avg
	}

	food := (groceryCosts[cfg.GroceryLevel].Avg + diningCosts[cfg.DiningFrequency].Avg) * float64(cfg.FamilySize)

	entertainment := entertainmentCosts[cfg.EntertainmentLevel].Avg * float64(cfg.FamilySize)
	if cfg.HasGym {
		// One membership, not per person.
		entertainment += gymCost.Avg
	}

	childcare := 0.0
	if cfg.UsesChildcare() {
		childcare = childcareCosts[cfg.ChildcareType].Avg * float64(cfg.NumChildren)
	}

	savings := savingsCosts[cfg.SavingsGoal].Avg

	other := (otherClothing.Avg+otherHealthcare.Avg)*float64(cfg.FamilySize) + otherPersonalCare.Avg

	total := housing + utilities + transportation + food + entertainment + childcare + savings + other

	// Percentages come from the unrounded figures.
	percentages := map[string]float64{
		"housing":        housing / total * 100,
		"utilities":      utilities / total * 100,
		"transportation": transportation / total * 100,
		"food":           food / total * 100,
		"entertainment":  entertainment / total * 100,
		"childcare":      childcare / total * 100,
		"savings":        savings / total * 100,
		"other":          other / total * 100,
	}

	monthly := CostBreakdown{
		Housing:        math.Round(housing),
		Utilities:      math.Round(utilities),
		Transportation: math.Round(transportation),
		Food:           math.Round(food),
		Entertainment:  math.Round(entertainment),
		Childcare:      math.Round(childcare),
		Savings:        math.Round(savings),
		Other:          math.Round(other),
	}
	// Total is the sum of the rounded categories, keeping the breakdown
	// internally consistent.
	monthly.Total = monthly.Housing + monthly.Utilities + monthly.Transportation +
		monthly.Food + monthly.Entertainment + monthly.Childcare + monthly.Savings + monthly.Other

	annual := CostBreakdown{
		Housing:        monthly.Housing * 12,
		Utilities:      monthly.Utilities * 12,
		Transportation: monthly.Transportation * 12,
		Food:           monthly.Food * 12,
		Entertainment:  monthly.Entertainment * 12,
		Childcare:      monthly.Childcare * 12,
		Savings:        monthly.Savings * 12,
		Other:          monthly.Other * 12,
		Total:          monthly.Total * 12,
	}

	return &CostResult{
		Monthly:               monthly,
		Annual:                annual,
		RequiredMonthlySalary: monthly.Total,
		RequiredAnnualSalary:  annual.Total,
		BreakdownPercentages:  percentages,
	}, nil
}
