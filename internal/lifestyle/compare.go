// internal/lifestyle/compare.go
package lifestyle

import (
	"fmt"
	"math"
	"strconv"
)

// Affordability compares a monthly lifestyle cost against a job's salary
// range.
type Affordability struct {
	IsAffordable            bool    `json:"isAffordable"`
	MonthlySurplus          float64 `json:"monthlySurplus"`
	AnnualSurplus           float64 `json:"annualSurplus"`
	AffordabilityPercentage float64 `json:"affordabilityPercentage"`
	Message                 string  `json:"message"`
}

// CompareToSalary reports how much of a monthly lifestyle cost a salary
// range covers. Coverage at 90% or better still counts as affordable with
// minor adjustments.
func CompareToSalary(monthlyCost, salaryMin, salaryMax float64) Affordability {
	avgSalary := (salaryMin + salaryMax) / 2
	monthlySurplus := avgSalary/12 - monthlyCost
	annualSurplus := avgSalary - monthlyCost*12

	pct := 100.0
	if monthlyCost > 0 {
		pct = avgSalary / (monthlyCost * 12) * 100
	}

	a := Affordability{
		MonthlySurplus:          math.Round(monthlySurplus),
		AnnualSurplus:           math.Round(annualSurplus),
		AffordabilityPercentage: math.Round(pct),
	}

	switch {
	case pct >= 100:
		a.IsAffordable = true
		a.Message = fmt.Sprintf("This career fully supports your lifestyle with %s/month to spare", FormatCurrency(math.Round(monthlySurplus)))
	case pct >= 90:
		a.IsAffordable = true
		a.Message = fmt.Sprintf("This career covers most of your lifestyle needs (%.0f%%)", math.Round(pct))
	case pct >= 75:
		a.Message = fmt.Sprintf("This career covers %.0f%% of your lifestyle. You may need to adjust some expenses.", math.Round(pct))
	default:
		a.Message = fmt.Sprintf("This career may not fully support your desired lifestyle (%.0f%% coverage)", math.Round(pct))
	}

	return a
}

// SuggestAdjustments proposes cost cuts that would close the gap between
// the configured lifestyle and a target annual salary.
func SuggestAdjustments(cfg Config, targetSalary float64) ([]string, error) {
	result, err := Calculate(cfg)
	if err != nil {
		return nil, err
	}

	gap := result.RequiredAnnualSalary - targetSalary
	if gap <= 0 {
		return []string{"Your lifestyle is affordable with this salary"}, nil
	}

	var suggestions []string

	if cfg.HousingLocation == LocationCenter {
		centerAvg := housingCosts[housingTier(cfg.Bedrooms, LocationCenter)].Avg
		outsideAvg := housingCosts[housingTier(cfg.Bedrooms, LocationOutside)].Avg
		savings := centerAvg - outsideAvg
		suggestions = append(suggestions, fmt.Sprintf(
			"Consider housing outside George Town center to save %s/month", FormatCurrency(math.Round(savings))))
	}

	if cfg.TransportationType == TransportCar || cfg.TransportationType == TransportBoth {
		carSavings := totalCar.Avg - publicTransport.Avg
		suggestions = append(suggestions, fmt.Sprintf(
			"Switch to public transportation to save %s/month", FormatCurrency(math.Round(carSavings))))
	}

	if cfg.DiningFrequency == DiningFrequent || cfg.DiningFrequency == DiningRegular {
		suggestions = append(suggestions, "Reduce dining out frequency to save CI$200-400/month")
	}

	if cfg.EntertainmentLevel == EntertainmentActive {
		suggestions = append(suggestions, "Reduce entertainment expenses to save CI$100-200/month")
	}

	return suggestions, nil
}

// FormatCurrency renders an amount as CI$ with thousands separators,
// no decimals.
func FormatCurrency(amount float64) string {
	neg := amount < 0
	n := strconv.FormatFloat(math.Abs(math.Round(amount)), 'f', 0, 64)

	var out []byte
	for i, d := range []byte(n) {
		if i > 0 && (len(n)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	if neg {
		return "-CI$" + string(out)
	}
	return "CI$" + string(out)
}
