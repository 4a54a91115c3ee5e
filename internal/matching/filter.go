// internal/matching/filter.go
package matching

import (
	"sort"
	"strings"
)

// Filters narrows a scored result set. Zero values mean the criterion is
// not applied.
type Filters struct {
	MinSalary       float64  `json:"minSalary,omitempty"`
	MaxSalary       float64  `json:"maxSalary,omitempty"`
	Locations       []string `json:"locations,omitempty"`
	Industries      []string `json:"industries,omitempty"`
	EducationLevels []string `json:"educationLevels,omitempty"`
	MinMatchScore   float64  `json:"minMatchScore,omitempty"`
}

// FilterJobs keeps the jobs that satisfy every active criterion,
// preserving their order. Salary bounds test range overlap: a job passes
// MinSalary if its top of range reaches it, and MaxSalary if its bottom
// stays under it.
func FilterJobs(jobs []ScoredJob, filters Filters) []ScoredJob {
	out := make([]ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		if filters.MinSalary > 0 && job.SalaryMax < filters.MinSalary {
			continue
		}
		if filters.MaxSalary > 0 && job.SalaryMin > filters.MaxSalary {
			continue
		}
		if len(filters.Locations) > 0 && !containsAny(job.Location, filters.Locations) {
			continue
		}
		if len(filters.Industries) > 0 && !containsAny(job.Industry, filters.Industries) {
			continue
		}
		if len(filters.EducationLevels) > 0 && !containsAny(job.EducationLevel, filters.EducationLevels) {
			continue
		}
		if filters.MinMatchScore > 0 && job.MatchScore < filters.MinMatchScore {
			continue
		}
		out = append(out, job)
	}
	return out
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func containsAny(field string, candidates []string) bool {
	f := strings.ToLower(field)
	for _, c := range candidates {
		if strings.Contains(f, strings.ToLower(c)) {
			return true
		}
	}
	return false
}

// SortKey selects the field SortJobs orders by.
type SortKey string

const (
	SortByMatchScore SortKey = "matchScore"
	SortBySalary     SortKey = "salary"
	SortByTitle      SortKey = "title"
	SortByCompany    SortKey = "company"
)

// SortJobs returns a new slice ordered by the given key. Descending is the
// default; the input is left untouched and ties keep their relative order.
func SortJobs(jobs []ScoredJob, key SortKey, ascending bool) []ScoredJob {
	sorted := make([]ScoredJob, len(jobs))
	copy(sorted, jobs)

	cmp := func(a, b ScoredJob) int {
		switch key {
		case SortBySalary:
			return compareFloat(a.AvgSalary(), b.AvgSalary())
		case SortByTitle:
			return strings.Compare(a.Title, b.Title)
		case SortByCompany:
			return strings.Compare(a.Company, b.Company)
		default:
			return compareFloat(a.MatchScore, b.MatchScore)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		c := cmp(sorted[i], sorted[j])
		if ascending {
			return c < 0
		}
		return c > 0
	})

	return sorted
}
