// internal/matching/engine_test.go
package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everupward248/hackathon-oct25/internal/models"
)

func testProfile() Profile {
	return Profile{
		RequiredAnnualSalary: 60000,
		PreferredLocations:   []string{"George Town"},
		EducationLevel:       "Bachelor's Degree",
		ExperienceYears:      "3-4 years",
	}
}

func testJob(id string) models.Job {
	return models.Job{
		ID:              id,
		Title:           "Financial Analyst",
		Company:         "Island Finance Ltd",
		SalaryMin:       55000,
		SalaryMax:       75000,
		Location:        "George Town",
		EducationLevel:  "Bachelor's Degree",
		ExperienceYears: "2-3 years",
		Industry:        "Financial Services",
	}
}

func TestSalaryFit(t *testing.T) {
	tests := []struct {
		name      string
		min, max  float64
		required  float64
		wantScore float64
	}{
		{"comfortably above requirement", 100000, 140000, 80000, 100},
		{"double the requirement starts the penalty", 100000, 140000, 60000, 90},
		{"exactly meets requirement", 55000, 65000, 60000, 100},
		{"within the 150% sweet spot", 80000, 100000, 60000, 100},
		{"far above triggers overqualification penalty", 200000, 280000, 60000, 85},
		{"well below scores zero", 30000, 40000, 80000, 0},
		{"half of required scores zero", 25000, 35000, 60000, 0},
		{"zero requirement always passes", 30000, 40000, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := salaryFit(tt.min, tt.max, tt.required)
			assert.InDelta(t, tt.wantScore, got, 0.01)
		})
	}
}

func TestLocationFit(t *testing.T) {
	tests := []struct {
		name      string
		location  string
		preferred []string
		want      float64
	}{
		{"no preference accepts everything", "Cayman Brac", nil, 100},
		{"preferred location contains match", "George Town, Grand Cayman", []string{"George Town"}, 100},
		{"george area near match", "Greater George Harbour", []string{"George Town"}, 90},
		{"remote is almost as good", "Remote", []string{"West Bay"}, 95},
		{"elsewhere on grand cayman", "East End", []string{"Cayman Brac"}, 50},
		{"sister islands", "Little Cayman", []string{"George Town"}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locationFit(tt.location, tt.preferred))
		})
	}
}

func TestEducationFit(t *testing.T) {
	assert.Equal(t, 100.0, educationFit("Bachelor's Degree", "Bachelor's Degree"))
	assert.Equal(t, 100.0, educationFit("Associate's Degree", "Master's Degree"))
	assert.Equal(t, 70.0, educationFit("Master's Degree", "Bachelor's Degree"))
	assert.Equal(t, 40.0, educationFit("Doctoral Degree", "Bachelor's Degree"))
	// high school against doctoral hits the floor
	assert.Equal(t, 10.0, educationFit("Doctoral Degree", "High School or Equivalent"))
	// unrecognized labels score as "some college" on both sides
	assert.Equal(t, 100.0, educationFit("anything", "whatever"))
}

func TestExperienceFit(t *testing.T) {
	assert.Equal(t, 100.0, experienceFit("2-3 years", "3-4 years"))
	assert.Equal(t, 100.0, experienceFit("3-4 years", "3-4 years"))
	assert.InDelta(t, 85.0, experienceFit("3-4 years", "2-3 years"), 0.01)
	// 10+ years against a fresh graduate hits the floor
	assert.Equal(t, 20.0, experienceFit("10+ years", "less than 1 year"))
}

func TestIndustryFit(t *testing.T) {
	assert.Equal(t, 100.0, industryFit("Tourism", nil))
	assert.Equal(t, 100.0, industryFit("Financial Services", []string{"financial"}))
	// substring match works in both directions
	assert.Equal(t, 100.0, industryFit("Finance", []string{"Finance and Insurance"}))
	assert.Equal(t, 40.0, industryFit("Construction", []string{"Healthcare"}))
}

func TestScore_PerfectMatch(t *testing.T) {
	profile := testProfile()
	profile.PreferredIndustries = []string{"Financial Services"}

	scored := Score(testJob("j1"), profile)

	assert.Equal(t, 100.0, scored.MatchScore)
	assert.Equal(t, 100.0, scored.Breakdown.SalaryScore)
	assert.Equal(t, 100.0, scored.Breakdown.LocationScore)
	assert.Equal(t, 100.0, scored.Breakdown.EducationScore)
	assert.Equal(t, 100.0, scored.Breakdown.ExperienceScore)
	assert.Equal(t, 100.0, scored.Breakdown.IndustryScore)
}

func TestScore_BoundsAndWeights(t *testing.T) {
	job := models.Job{
		ID: "j2", Title: "Surgeon", SalaryMin: 30000, SalaryMax: 40000,
		Location: "Cayman Brac", EducationLevel: "Doctoral Degree",
		ExperienceYears: "10+ years", Industry: "Healthcare",
	}
	profile := Profile{
		RequiredAnnualSalary: 80000,
		PreferredLocations:   []string{"George Town"},
		EducationLevel:       "High School or Equivalent",
		ExperienceYears:      "less than 1 year",
		PreferredIndustries:  []string{"Tourism"},
	}

	scored := Score(job, profile)
	assert.GreaterOrEqual(t, scored.MatchScore, 0.0)
	assert.LessOrEqual(t, scored.MatchScore, 100.0)

	// weighting entirely on salary collapses the score to the salary fit
	profile.Priorities = &Priorities{Salary: 100, Location: 0, WorkLifeBalance: 0}
	salaryOnly := Score(job, profile)
	assert.Equal(t, salaryOnly.Breakdown.SalaryScore, salaryOnly.MatchScore)
}

func TestScore_ZeroPrioritiesFallBackToDefaults(t *testing.T) {
	profile := testProfile()
	profile.Priorities = &Priorities{}

	withNil := profile
	withNil.Priorities = nil

	assert.Equal(t, Score(testJob("j1"), withNil).MatchScore, Score(testJob("j1"), profile).MatchScore)
}

func TestMatchJobsToProfile(t *testing.T) {
	good := testJob("good")
	poor := testJob("poor")
	poor.SalaryMin = 25000
	poor.SalaryMax = 30000
	poor.Location = "Cayman Brac"

	t.Run("sorted descending by match score", func(t *testing.T) {
		results := MatchJobsToProfile([]models.Job{poor, good}, testProfile())
		require.Len(t, results, 2)
		assert.Equal(t, "good", results[0].ID)
		assert.GreaterOrEqual(t, results[0].MatchScore, results[1].MatchScore)
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		a := testJob("first")
		b := testJob("second")
		results := MatchJobsToProfile([]models.Job{a, b}, testProfile())
		require.Len(t, results, 2)
		assert.Equal(t, "first", results[0].ID)
		assert.Equal(t, "second", results[1].ID)
	})

	t.Run("empty catalog yields empty result", func(t *testing.T) {
		results := MatchJobsToProfile(nil, testProfile())
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		jobs := []models.Job{poor, good}
		MatchJobsToProfile(jobs, testProfile())
		assert.Equal(t, "poor", jobs[0].ID)
		assert.Equal(t, "good", jobs[1].ID)
	})
}
