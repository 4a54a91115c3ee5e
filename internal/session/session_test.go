// internal/session/session_test.go
package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everupward248/hackathon-oct25/internal/lifestyle"
	"github.com/everupward248/hackathon-oct25/internal/matching"
	"github.com/everupward248/hackathon-oct25/internal/models"
	"github.com/everupward248/hackathon-oct25/internal/pathway"
)

func TestNew(t *testing.T) {
	a := New()

	_, err := uuid.Parse(a.ID)
	assert.NoError(t, err)
	assert.False(t, a.CreatedAt.IsZero())
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)
	assert.False(t, a.Complete())

	b := New()
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAssessment_StagesAccumulate(t *testing.T) {
	a := New()

	cfg := lifestyle.Config{
		Bedrooms: 1, HousingLocation: lifestyle.LocationOutside, FamilySize: 1,
		TransportationType: lifestyle.TransportPublic, GroceryLevel: lifestyle.GroceryBasic,
		DiningFrequency: lifestyle.DiningOccasional, EntertainmentLevel: lifestyle.EntertainmentMinimal,
		SavingsGoal: lifestyle.SavingsModerate,
	}
	cost, err := lifestyle.Calculate(cfg)
	require.NoError(t, err)

	a.SetCostResult(cfg, cost)
	assert.NotNil(t, a.CostResult)
	assert.False(t, a.Complete())

	profile := matching.Profile{RequiredAnnualSalary: cost.RequiredAnnualSalary}
	jobs := []models.Job{{ID: "j1", Title: "Financial Analyst", SalaryMin: 55000, SalaryMax: 70000}}
	matches := matching.MatchJobsToProfile(jobs, profile)

	a.SetMatches(profile, matches)
	top, ok := a.TopMatch()
	require.True(t, ok)
	assert.Equal(t, "j1", top.ID)
	assert.False(t, a.Complete())

	p := pathway.Generate(jobs[0], jobs, pathway.Request{CurrentSalary: 50000})
	a.SetPathways("j1", []pathway.Pathway{p}, nil, nil, nil)

	assert.Equal(t, "j1", a.SelectedJobID)
	assert.True(t, a.Complete())
	assert.False(t, a.UpdatedAt.Before(a.CreatedAt))
}

func TestAssessment_TopMatchEmpty(t *testing.T) {
	a := New()
	_, ok := a.TopMatch()
	assert.False(t, ok)
}
