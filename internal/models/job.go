// internal/models/job.go
package models

// Job is a read-only catalog entity. The catalog is loaded by the
// surrounding system (Postgres via internal/catalog, or inline job
// variables); the decision pipeline never mutates it.
type Job struct {
	ID              string  `json:"id" db:"id"`
	Title           string  `json:"title" db:"job_title"`
	Company         string  `json:"company,omitempty" db:"employer"`
	SalaryMin       float64 `json:"salaryMin" db:"annualised_min"`
	SalaryMax       float64 `json:"salaryMax" db:"annualised_max"`
	Location        string  `json:"location" db:"location"`
	EducationLevel  string  `json:"educationLevel" db:"required_education_level"`
	ExperienceYears string  `json:"experienceYears" db:"years_experience"`
	Industry        string  `json:"industry" db:"industry"`
	Occupation      string  `json:"occupation,omitempty" db:"occupation"`
	Description     string  `json:"description,omitempty" db:"description"`
}

// AvgSalary is the midpoint of the advertised range, the figure every
// scoring and pathway heuristic works from.
func (j Job) AvgSalary() float64 {
	return (j.SalaryMin + j.SalaryMax) / 2
}
