// internal/matching/engine.go
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/everupward248/hackathon-oct25/internal/models"
)

// Profile captures everything the scoring engine knows about a user.
type Profile struct {
	RequiredAnnualSalary float64     `json:"requiredAnnualSalary"`
	PreferredLocations   []string    `json:"preferredLocations"`
	EducationLevel       string      `json:"currentEducationLevel"`
	ExperienceYears      string      `json:"yearsOfExperience"`
	PreferredIndustries  []string    `json:"preferredIndustries,omitempty"`
	Priorities           *Priorities `json:"priorities,omitempty"`
}

// Priorities weight the three score groups. They are relative, not
// percentages; the engine normalizes by their sum.
type Priorities struct {
	Salary          float64 `json:"salary"`
	Location        float64 `json:"location"`
	WorkLifeBalance float64 `json:"workLifeBalance"`
}

var defaultPriorities = Priorities{Salary: 40, Location: 30, WorkLifeBalance: 30}

// Breakdown holds the five sub-scores behind a match, each rounded to an
// integer in [0,100].
type Breakdown struct {
	SalaryScore     float64 `json:"salaryScore"`
	LocationScore   float64 `json:"locationScore"`
	EducationScore  float64 `json:"educationScore"`
	ExperienceScore float64 `json:"experienceScore"`
	IndustryScore   float64 `json:"industryScore"`
}

// ScoredJob is a catalog job annotated with match scores.
type ScoredJob struct {
	models.Job

	MatchScore   float64   `json:"matchScore"`
	SalaryFit    float64   `json:"salaryFit"`
	LocationFit  float64   `json:"locationFit"`
	EducationFit float64   `json:"educationFit"`
	Breakdown    Breakdown `json:"breakdown"`
}

// salaryFit scores how well a job's salary range covers the required
// salary. Ranges landing between 100% and 150% of the requirement score a
// full 100; well above that gets a mild overqualification penalty, below
// it the penalty is steep.
func salaryFit(salaryMin, salaryMax, requiredSalary float64) float64 {
	if requiredSalary <= 0 {
		return 100
	}

	avg := (salaryMin + salaryMax) / 2
	if avg >= requiredSalary {
		excessRatio := (avg - requiredSalary) / requiredSalary
		if excessRatio <= 0.5 {
			return 100
		}
		return math.Max(85, 100-(excessRatio-0.5)*20)
	}

	shortfallRatio := (requiredSalary - avg) / requiredSalary
	return math.Max(0, 100-shortfallRatio*200)
}

// grandCaymanDistricts covers the main island; everything else is assumed
// to be a sister island.
var grandCaymanDistricts = []string{"george town", "west bay", "bodden town", "north side", "east end"}

// locationFit scores a job location against the user's preferred list.
// Tiers are checked in priority order and the first hit wins.
func locationFit(jobLocation string, preferred []string) float64 {
	if len(preferred) == 0 {
		return 100
	}

	loc := strings.ToLower(strings.TrimSpace(jobLocation))

	for _, p := range preferred {
		if strings.Contains(loc, strings.ToLower(p)) {
			return 100
		}
	}

	// both in the George Town area counts as a near match
	if strings.Contains(loc, "george") {
		for _, p := range preferred {
			if strings.Contains(strings.ToLower(p), "george") {
				return 90
			}
		}
	}

	if strings.Contains(loc, "remote") {
		return 95
	}

	for _, district := range grandCaymanDistricts {
		if strings.Contains(loc, district) {
			return 50
		}
	}

	return 30
}

// educationFit scores the user's education against the job's requirement
// on the shared ordinal scale. Meeting the requirement is a full score;
// each level of gap costs 30 points down to a floor of 10.
func educationFit(jobLevel, userLevel string) float64 {
	job := models.EducationOrdinal(jobLevel)
	user := models.EducationOrdinal(userLevel)

	if user >= job {
		return 100
	}
	return math.Max(10, 100-(job-user)*30)
}

// experienceFit scores experience the same way, at 15 points per year of
// gap with a floor of 20.
func experienceFit(jobYears, userYears string) float64 {
	job := models.ExperienceYears(jobYears)
	user := models.ExperienceYears(userYears)

	if user >= job {
		return 100
	}
	return math.Max(20, 100-(job-user)*15)
}

// industryFit is all-or-nothing with partial credit: a preferred industry
// matches on substring in either direction.
func industryFit(jobIndustry string, preferred []string) float64 {
	if len(preferred) == 0 {
		return 100
	}

	ind := strings.ToLower(jobIndustry)
	for _, p := range preferred {
		pl := strings.ToLower(p)
		if strings.Contains(ind, pl) || strings.Contains(pl, ind) {
			return 100
		}
	}
	return 40
}

// Score computes the five sub-scores and the weighted overall score for a
// single job.
func Score(job models.Job, profile Profile) ScoredJob {
	salary := salaryFit(job.SalaryMin, job.SalaryMax, profile.RequiredAnnualSalary)
	location := locationFit(job.Location, profile.PreferredLocations)
	education := educationFit(job.EducationLevel, profile.EducationLevel)
	experience := experienceFit(job.ExperienceYears, profile.ExperienceYears)
	industry := industryFit(job.Industry, profile.PreferredIndustries)

	priorities := defaultPriorities
	if profile.Priorities != nil {
		priorities = *profile.Priorities
	}
	total := priorities.Salary + priorities.Location + priorities.WorkLifeBalance
	if total <= 0 {
		priorities = defaultPriorities
		total = priorities.Salary + priorities.Location + priorities.WorkLifeBalance
	}

	matchScore := math.Round(
		salary*(priorities.Salary/total) +
			location*(priorities.Location/total) +
			(education+experience+industry)/3*(priorities.WorkLifeBalance/total))

	return ScoredJob{
		Job:          job,
		MatchScore:   matchScore,
		SalaryFit:    math.Round(salary),
		LocationFit:  math.Round(location),
		EducationFit: math.Round(education),
		Breakdown: Breakdown{
			SalaryScore:     math.Round(salary),
			LocationScore:   math.Round(location),
			EducationScore:  math.Round(education),
			ExperienceScore: math.Round(experience),
			IndustryScore:   math.Round(industry),
		},
	}
}

// MatchJobsToProfile scores every job against the profile and returns them
// ordered by match score, highest first. Ties keep catalog order. The
// input slice is never modified; an empty catalog yields an empty result.
func MatchJobsToProfile(jobs []models.Job, profile Profile) []ScoredJob {
	scored := make([]ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		scored = append(scored, Score(job, profile))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	return scored
}
