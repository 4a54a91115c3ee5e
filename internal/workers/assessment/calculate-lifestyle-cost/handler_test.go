// internal/workers/assessment/calculate-lifestyle-cost/handler_test.go
package calculatelifestylecost

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everupward248/hackathon-oct25/internal/common/logger"
	"github.com/everupward248/hackathon-oct25/internal/common/validation"
	"github.com/everupward248/hackathon-oct25/internal/lifestyle"
)

func newTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), logger.NewTestLogger(t))
}

func singleProfessionalConfig() lifestyle.Config {
	return lifestyle.Config{
		Bedrooms:           1,
		HousingLocation:    lifestyle.LocationOutside,
		FamilySize:         1,
		TransportationType: lifestyle.TransportPublic,
		GroceryLevel:       lifestyle.GroceryBasic,
		DiningFrequency:    lifestyle.DiningOccasional,
		EntertainmentLevel: lifestyle.EntertainmentMinimal,
		SavingsGoal:        lifestyle.SavingsModerate,
	}
}

func TestExecute_Baseline(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		AssessmentID:    "a1",
		LifestyleConfig: singleProfessionalConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, "a1", output.AssessmentID)
	assert.Equal(t, 3575.0, output.CostResult.Monthly.Total)
	assert.Equal(t, 42900.0, output.RequiredAnnualSalary)
	assert.Equal(t, "CI$3,575", output.FormattedMonthlyTotal)
	assert.Nil(t, output.Affordability)
	assert.Empty(t, output.Suggestions)
}

func TestExecute_WithTargetSalary(t *testing.T) {
	h := newTestHandler(t)

	t.Run("affordable target adds comparison only", func(t *testing.T) {
		output, err := h.Execute(context.Background(), &Input{
			LifestyleConfig: singleProfessionalConfig(),
			TargetSalaryMin: 60000,
			TargetSalaryMax: 80000,
		})
		require.NoError(t, err)

		require.NotNil(t, output.Affordability)
		assert.True(t, output.Affordability.IsAffordable)
		assert.Empty(t, output.Suggestions)
	})

	t.Run("unaffordable target adds suggestions", func(t *testing.T) {
		cfg := singleProfessionalConfig()
		cfg.HousingLocation = lifestyle.LocationCenter
		cfg.TransportationType = lifestyle.TransportCar

		output, err := h.Execute(context.Background(), &Input{
			LifestyleConfig: cfg,
			TargetSalaryMin: 20000,
			TargetSalaryMax: 28000,
		})
		require.NoError(t, err)

		require.NotNil(t, output.Affordability)
		assert.False(t, output.Affordability.IsAffordable)
		assert.NotEmpty(t, output.Suggestions)
	})
}

func TestExecute_InvalidConfig(t *testing.T) {
	h := newTestHandler(t)

	cfg := singleProfessionalConfig()
	cfg.GroceryLevel = "imported"

	_, err := h.Execute(context.Background(), &Input{LifestyleConfig: cfg})
	require.Error(t, err)
}

func TestInputSchema(t *testing.T) {
	valid := Input{
		AssessmentID:    "a1",
		LifestyleConfig: singleProfessionalConfig(),
	}

	t.Run("valid document passes", func(t *testing.T) {
		raw, err := json.Marshal(valid)
		require.NoError(t, err)

		result, err := validation.ValidateJSON(raw, inputSchema)
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("missing lifestyleConfig fails", func(t *testing.T) {
		result, err := validation.ValidateJSON([]byte(`{"assessmentId":"a1"}`), inputSchema)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.NotEmpty(t, result.FirstError())
	})

	t.Run("negative bedrooms fails", func(t *testing.T) {
		raw := []byte(`{"lifestyleConfig":{"bedrooms":-1,"housingLocation":"outside","familySize":1,
			"transportationType":"public","groceryLevel":"basic","diningFrequency":"occasional",
			"entertainmentLevel":"minimal","savingsGoal":"moderate"}}`)

		result, err := validation.ValidateJSON(raw, inputSchema)
		require.NoError(t, err)
		assert.False(t, result.Valid)
	})

	t.Run("fractional familySize fails", func(t *testing.T) {
		raw := []byte(`{"lifestyleConfig":{"bedrooms":1,"housingLocation":"outside","familySize":1.5,
			"transportationType":"public","groceryLevel":"basic","diningFrequency":"occasional",
			"entertainmentLevel":"minimal","savingsGoal":"moderate"}}`)

		result, err := validation.ValidateJSON(raw, inputSchema)
		require.NoError(t, err)
		assert.False(t, result.Valid)
	})
}
