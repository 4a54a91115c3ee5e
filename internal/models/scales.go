// internal/models/scales.go
package models

import "strings"

// Ordinal scales shared by the matching engine and the pathway generator.
// Both sides of a comparison (job requirement and user attribute) are mapped
// through the same table, so only relative order matters.

// educationHierarchy maps education labels to ordinal levels. Fractional
// tiers slot certificates and associate degrees between the main rungs.
var educationHierarchy = map[string]float64{
	"high school or equivalent":  1,
	"some college/university":    2,
	"certificate/diploma":        2.5,
	"associate's degree":         3,
	"professional certification": 3.5,
	"bachelor's degree":          4,
	"master's degree":            5,
	"doctoral degree":            6,
}

// EducationOrdinal returns the ordinal level for an education label.
// Unrecognized labels fall back to 2 (some college), matching the
// catalog's behavior for free-text education fields.
func EducationOrdinal(label string) float64 {
	if v, ok := educationHierarchy[strings.ToLower(strings.TrimSpace(label))]; ok {
		return v
	}
	return 2
}

// experienceYears maps experience-tier labels to approximate numeric years
// (midpoint of the advertised range).
var experienceYears = map[string]float64{
	"less than 1 year": 0.5,
	"0-1 years":        0.5,
	"1-2 years":        1.5,
	"2-3 years":        2.5,
	"3-4 years":        3.5,
	"4-5 years":        4.5,
	"5-6 years":        5.5,
	"7-10 years":       8.5,
	"10+ years":        12,
}

// ExperienceYears returns approximate years for an experience-tier label,
// defaulting to 3 for unrecognized tiers.
func ExperienceYears(label string) float64 {
	if v, ok := experienceYears[strings.ToLower(strings.TrimSpace(label))]; ok {
		return v
	}
	return 3
}
