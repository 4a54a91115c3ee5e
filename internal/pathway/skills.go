// internal/pathway/skills.go
package pathway

import (
	"strings"

	"github.com/everupward248/hackathon-oct25/internal/models"
)

const maxSkillsPerStep = 8

// industrySkills is the base skill set per industry. A proper skills
// taxonomy would live in the catalog database; these defaults cover the
// industries the local labor market actually posts.
var industrySkills = map[string][]string{
	"Financial Services":    {"Financial Analysis", "Risk Management", "Accounting", "Excel"},
	"Technology":            {"Problem Solving", "Technical Documentation"},
	"Tourism & Hospitality": {"Customer Service", "Communication", "Problem Solving"},
	"Healthcare":            {"Patient Care", "Medical Terminology", "Attention to Detail"},
	"Construction":          {"Safety Protocols", "Project Planning", "Quality Control"},
}

var defaultSkills = []string{"Communication", "Teamwork", "Time Management"}

// skillsForJob derives a skill list from a job's industry, title keywords,
// and seniority signals, capped at eight in build order.
func skillsForJob(job models.Job) []string {
	title := strings.ToLower(job.Title)

	base, ok := industrySkills[job.Industry]
	if !ok {
		base = defaultSkills
	}
	skills := append([]string(nil), base...)

	switch job.Industry {
	case "Financial Services":
		if strings.Contains(title, "analyst") {
			skills = append(skills, "Data Analysis", "Financial Modeling")
		}
		if strings.Contains(title, "manager") {
			skills = append(skills, "Team Leadership", "Strategic Planning")
		}
	case "Technology":
		if strings.Contains(title, "developer") {
			skills = append(skills, "Programming", "Software Development", "Version Control")
		}
		if strings.Contains(title, "data") {
			skills = append(skills, "SQL", "Python", "Data Analysis")
		}
	case "Tourism & Hospitality":
		if strings.Contains(title, "manager") {
			skills = append(skills, "Operations Management", "Staff Training", "Budgeting")
		}
	case "Healthcare":
		if strings.Contains(title, "nurse") {
			skills = append(skills, "Clinical Skills", "Emergency Response")
		}
	case "Construction":
		if strings.Contains(title, "manager") {
			skills = append(skills, "Team Coordination", "Budget Management")
		}
	}

	if strings.Contains(job.ExperienceYears, "5+") || strings.Contains(job.ExperienceYears, "10+") {
		skills = append(skills, "Leadership", "Mentoring")
	}

	if strings.Contains(job.EducationLevel, "Master") || strings.Contains(job.EducationLevel, "Doctoral") {
		skills = append(skills, "Research", "Critical Thinking", "Advanced Analytics")
	}

	if len(skills) > maxSkillsPerStep {
		skills = skills[:maxSkillsPerStep]
	}
	return skills
}
