// internal/pathway/options.go
package pathway

import (
	"fmt"

	"github.com/everupward248/hackathon-oct25/internal/models"
)

// GenerateOptions produces three pathway variants for one target: a fast
// track restricted to same-industry stepping stones with a compressed
// timeline, the standard pathway, and a gradual track trading time for a
// 30% cheaper education bill.
func GenerateOptions(target models.Job, catalog []models.Job, req Request) []Pathway {
	var sameIndustry []models.Job
	for _, job := range catalog {
		if job.Industry == target.Industry {
			sameIndustry = append(sameIndustry, job)
		}
	}

	fast := Generate(target, sameIndustry, req)
	fast.Timeline = fmt.Sprintf("%d years", max(3, timelineYears(fast.Timeline)-2))

	standard := Generate(target, catalog, req)

	gradual := Generate(target, catalog, req)
	gradual.Timeline = fmt.Sprintf("%d years", timelineYears(gradual.Timeline)+2)
	gradual.TotalEducationCost *= 0.7

	return []Pathway{fast, standard, gradual}
}

func timelineYears(timeline string) int {
	var n int
	fmt.Sscanf(timeline, "%d", &n)
	return n
}
