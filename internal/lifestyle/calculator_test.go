// internal/lifestyle/calculator_test.go
package lifestyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "github.com/everupward248/hackathon-oct25/internal/common/errors"
)

func baseConfig() Config {
	return Config{
		Bedrooms:           1,
		HousingLocation:    LocationOutside,
		FamilySize:         1,
		NumChildren:        0,
		TransportationType: TransportPublic,
		GroceryLevel:       GroceryBasic,
		DiningFrequency:    DiningOccasional,
		EntertainmentLevel: EntertainmentMinimal,
		HasGym:             false,
		SavingsGoal:        SavingsModerate,
	}
}

func TestCalculate_SingleProfessionalBaseline(t *testing.T) {
	result, err := Calculate(baseConfig())
	require.NoError(t, err)

	assert.Equal(t, 1500.0, result.Monthly.Housing)
	assert.Equal(t, 425.0, result.Monthly.Utilities)
	assert.Equal(t, 100.0, result.Monthly.Transportation)
	assert.Equal(t, 650.0, result.Monthly.Food)
	assert.Equal(t, 75.0, result.Monthly.Entertainment)
	assert.Equal(t, 0.0, result.Monthly.Childcare)
	assert.Equal(t, 400.0, result.Monthly.Savings)
	assert.Equal(t, 425.0, result.Monthly.Other)
	assert.Equal(t, 3575.0, result.Monthly.Total)

	assert.Equal(t, 3575.0*12, result.Annual.Total)
	assert.Equal(t, result.Monthly.Total, result.RequiredMonthlySalary)
	assert.Equal(t, result.Annual.Total, result.RequiredAnnualSalary)
}

func TestCalculate_TotalEqualsSumOfCategories(t *testing.T) {
	configs := []Config{
		baseConfig(),
		{
			Bedrooms: 2, HousingLocation: LocationCenter, FamilySize: 4, NumChildren: 2,
			ChildcareType: ChildcareDaycare, TransportationType: TransportCar,
			GroceryLevel: GroceryPremium, DiningFrequency: DiningFrequent,
			EntertainmentLevel: EntertainmentActive, HasGym: true, SavingsGoal: SavingsAggressive,
		},
		{
			Bedrooms: 0, HousingLocation: LocationOutside, FamilySize: 1,
			TransportationType: TransportPublic, GroceryLevel: GroceryBasic,
			DiningFrequency: DiningOccasional, EntertainmentLevel: EntertainmentMinimal,
			SavingsGoal: SavingsMinimal,
		},
	}

	for _, cfg := range configs {
		result, err := Calculate(cfg)
		require.NoError(t, err)

		sum := result.Monthly.Housing + result.Monthly.Utilities + result.Monthly.Transportation +
			result.Monthly.Food + result.Monthly.Entertainment + result.Monthly.Childcare +
			result.Monthly.Savings + result.Monthly.Other
		assert.Equal(t, sum, result.Monthly.Total)
		assert.Equal(t, result.Monthly.Total*12, result.Annual.Total)
	}
}

func TestCalculate_FamilySizeDrivesMobileLines(t *testing.T) {
	single := baseConfig()
	couple := baseConfig()
	couple.FamilySize = 2
	couple.TransportationType = TransportCar // flat public rate only applies to size 1

	singleResult, err := Calculate(single)
	require.NoError(t, err)

	coupleResult, err := Calculate(couple)
	require.NoError(t, err)

	// one extra mobile line at 75/month
	assert.Equal(t, singleResult.Monthly.Utilities+75, coupleResult.Monthly.Utilities)
}

func TestCalculate_PublicTransportFlatRateForSingles(t *testing.T) {
	cfg := baseConfig()
	cfg.FamilySize = 3
	cfg.TransportationType = TransportPublic

	result, err := Calculate(cfg)
	require.NoError(t, err)

	// families on public transport pay per person
	assert.Equal(t, publicTransport.Avg*3, result.Monthly.Transportation)

	cfg.FamilySize = 1
	single, err := Calculate(cfg)
	require.NoError(t, err)
	assert.Equal(t, publicTransport.Avg, single.Monthly.Transportation)
}

func TestCalculate_HouseholdSizeNeverLowersTotal(t *testing.T) {
	for _, transport := range []TransportationType{TransportCar, TransportPublic, TransportBoth} {
		t.Run(string(transport), func(t *testing.T) {
			prev := -1.0
			for size := 1; size <= 6; size++ {
				cfg := baseConfig()
				cfg.FamilySize = size
				cfg.TransportationType = transport

				result, err := Calculate(cfg)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, result.Monthly.Total, prev, "family size %d", size)
				prev = result.Monthly.Total
			}
		})
	}
}

func TestCalculate_ChildcareRequiresChildren(t *testing.T) {
	cfg := baseConfig()
	cfg.ChildcareType = ChildcareDaycare
	cfg.NumChildren = 0

	result, err := Calculate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Monthly.Childcare)

	cfg.FamilySize = 3
	cfg.NumChildren = 2
	result, err = Calculate(cfg)
	require.NoError(t, err)
	assert.Equal(t, childcareCosts[ChildcareDaycare].Avg*2, result.Monthly.Childcare)
}

func TestCalculate_HousingTierMonotonic(t *testing.T) {
	prev := -1.0
	for _, bedrooms := range []int{0, 1, 2, 3} {
		cfg := baseConfig()
		cfg.Bedrooms = bedrooms
		cfg.HousingLocation = LocationCenter
		if bedrooms == 0 {
			cfg.HousingLocation = LocationOutside // shared rooms have no center tier
		}

		result, err := Calculate(cfg)
		require.NoError(t, err)
		assert.Greater(t, result.Monthly.Housing, prev, "bedrooms=%d", bedrooms)
		prev = result.Monthly.Housing
	}
}

func TestCalculate_FourBedroomsCapsAtThree(t *testing.T) {
	three := baseConfig()
	three.Bedrooms = 3

	four := baseConfig()
	four.Bedrooms = 4

	threeResult, err := Calculate(three)
	require.NoError(t, err)

	fourResult, err := Calculate(four)
	require.NoError(t, err)

	assert.Equal(t, threeResult.Monthly.Housing, fourResult.Monthly.Housing)
}

func TestCalculate_GymMembership(t *testing.T) {
	cfg := baseConfig()
	without, err := Calculate(cfg)
	require.NoError(t, err)

	cfg.HasGym = true
	with, err := Calculate(cfg)
	require.NoError(t, err)

	assert.Equal(t, without.Monthly.Entertainment+gymCost.Avg, with.Monthly.Entertainment)
}

func TestCalculate_BreakdownPercentagesSumToRoughly100(t *testing.T) {
	result, err := Calculate(baseConfig())
	require.NoError(t, err)

	var sum float64
	for _, pct := range result.BreakdownPercentages {
		sum += pct
	}
	assert.InDelta(t, 100, sum, 1.0)
	assert.Len(t, result.BreakdownPercentages, 8)
}

func TestCalculate_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative bedrooms", func(c *Config) { c.Bedrooms = -1 }},
		{"zero family size", func(c *Config) { c.FamilySize = 0 }},
		{"negative children", func(c *Config) { c.NumChildren = -2 }},
		{"unknown housing location", func(c *Config) { c.HousingLocation = "underwater" }},
		{"unknown transportation", func(c *Config) { c.TransportationType = "helicopter" }},
		{"unknown grocery level", func(c *Config) { c.GroceryLevel = "imported" }},
		{"unknown dining frequency", func(c *Config) { c.DiningFrequency = "daily" }},
		{"unknown entertainment", func(c *Config) { c.EntertainmentLevel = "lavish" }},
		{"unknown savings goal", func(c *Config) { c.SavingsGoal = "none" }},
		{"unknown childcare with children", func(c *Config) {
			c.FamilySize = 2
			c.NumChildren = 1
			c.ChildcareType = "boarding"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(&cfg)

			_, err := Calculate(cfg)
			require.Error(t, err)
			assert.True(t, commonerrors.IsInvalidConfiguration(err))
		})
	}
}

func TestCompareToSalary(t *testing.T) {
	t.Run("fully affordable", func(t *testing.T) {
		a := CompareToSalary(3575, 80000, 100000)
		assert.True(t, a.IsAffordable)
		assert.Greater(t, a.MonthlySurplus, 0.0)
		assert.Contains(t, a.Message, "to spare")
	})

	t.Run("near miss counts as affordable", func(t *testing.T) {
		// avg 40000 against 42900 annual cost is ~93% coverage
		a := CompareToSalary(3575, 38000, 42000)
		assert.True(t, a.IsAffordable)
		assert.GreaterOrEqual(t, a.AffordabilityPercentage, 90.0)
	})

	t.Run("not affordable", func(t *testing.T) {
		a := CompareToSalary(3575, 20000, 24000)
		assert.False(t, a.IsAffordable)
		assert.Negative(t, a.MonthlySurplus)
	})

	t.Run("zero cost is always affordable", func(t *testing.T) {
		a := CompareToSalary(0, 30000, 40000)
		assert.True(t, a.IsAffordable)
	})
}

func TestSuggestAdjustments(t *testing.T) {
	t.Run("affordable lifestyle needs no changes", func(t *testing.T) {
		suggestions, err := SuggestAdjustments(baseConfig(), 100000)
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Contains(t, suggestions[0], "affordable")
	})

	t.Run("expensive lifestyle gets targeted cuts", func(t *testing.T) {
		cfg := Config{
			Bedrooms: 2, HousingLocation: LocationCenter, FamilySize: 2,
			TransportationType: TransportCar, GroceryLevel: GroceryPremium,
			DiningFrequency: DiningFrequent, EntertainmentLevel: EntertainmentActive,
			SavingsGoal: SavingsModerate,
		}
		suggestions, err := SuggestAdjustments(cfg, 30000)
		require.NoError(t, err)
		assert.Len(t, suggestions, 4)
		assert.Contains(t, suggestions[0], "outside George Town")
		assert.Contains(t, suggestions[1], "public transportation")
	})

	t.Run("invalid config surfaces error", func(t *testing.T) {
		cfg := baseConfig()
		cfg.FamilySize = 0
		_, err := SuggestAdjustments(cfg, 50000)
		require.Error(t, err)
	})
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "CI$3,575", FormatCurrency(3575))
	assert.Equal(t, "CI$42,900", FormatCurrency(42900))
	assert.Equal(t, "CI$1,250,000", FormatCurrency(1250000))
	assert.Equal(t, "CI$0", FormatCurrency(0))
	assert.Equal(t, "CI$500", FormatCurrency(500.4))
	assert.Equal(t, "-CI$1,200", FormatCurrency(-1200))
}
