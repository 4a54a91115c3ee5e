// internal/pathway/gap.go
package pathway

import (
	"fmt"
	"strings"

	"github.com/everupward248/hackathon-oct25/internal/models"
)

// AnalyzeSkillsGap diffs the user's skills against everything the pathway
// requires and recommends programs to cover the gap. Required skills keep
// first-seen order across steps.
func AnalyzeSkillsGap(target models.Job, p Pathway, currentSkills []string) SkillsGap {
	seen := make(map[string]struct{})
	var required []string
	for _, step := range p.Steps {
		for _, skill := range step.RequiredSkills {
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}
			required = append(required, skill)
		}
	}

	have := make(map[string]struct{}, len(currentSkills))
	for _, s := range currentSkills {
		have[s] = struct{}{}
	}

	var missing []string
	for _, skill := range required {
		if _, ok := have[skill]; !ok {
			missing = append(missing, skill)
		}
	}

	return SkillsGap{
		CurrentSkills:            currentSkills,
		RequiredSkills:           required,
		MissingSkills:            missing,
		EducationRecommendations: recommend(target, p, missing),
	}
}

func recommend(target models.Job, p Pathway, missing []string) []EducationRecommendation {
	var technical, leadership, industry []string
	for _, s := range missing {
		switch {
		case strings.Contains(s, "Programming") || strings.Contains(s, "SQL") ||
			strings.Contains(s, "Data") || strings.Contains(s, "Excel") ||
			strings.Contains(s, "Software"):
			technical = append(technical, s)
		case strings.Contains(s, "Leadership") || strings.Contains(s, "Management") ||
			strings.Contains(s, "Strategic"):
			leadership = append(leadership, s)
		default:
			industry = append(industry, s)
		}
	}

	var recs []EducationRecommendation

	if len(technical) > 0 {
		recs = append(recs, EducationRecommendation{
			Type:          "certification",
			Name:          fmt.Sprintf("%s Technical Certification", target.Industry),
			EstimatedCost: 3500,
			EstimatedTime: "6-12 months",
			Priority:      "high",
		})
	}

	if len(leadership) > 0 {
		recs = append(recs, EducationRecommendation{
			Type:          "course",
			Name:          "Leadership and Management Certificate",
			EstimatedCost: 2500,
			EstimatedTime: "4-6 months",
			Priority:      "medium",
		})
	}

	if anyStepRequires(p, "Bachelor") {
		recs = append(recs, EducationRecommendation{
			Type:          "degree",
			Name:          fmt.Sprintf("Bachelor's Degree in %s", target.Industry),
			EstimatedCost: 30000,
			EstimatedTime: "3-4 years",
			Priority:      "high",
		})
	}

	if anyStepRequires(p, "Master") {
		recs = append(recs, EducationRecommendation{
			Type:          "degree",
			Name:          fmt.Sprintf("Master's Degree in %s", target.Industry),
			EstimatedCost: 45000,
			EstimatedTime: "1.5-2 years",
			Priority:      "medium",
		})
	}

	if len(industry) > 0 {
		recs = append(recs, EducationRecommendation{
			Type:          "course",
			Name:          fmt.Sprintf("%s Professional Development", target.Industry),
			EstimatedCost: 1500,
			EstimatedTime: "2-3 months",
			Priority:      "low",
		})
	}

	return recs
}

func anyStepRequires(p Pathway, level string) bool {
	for _, step := range p.Steps {
		for _, edu := range step.RequiredEducation {
			if strings.Contains(edu, level) {
				return true
			}
		}
	}
	return false
}
