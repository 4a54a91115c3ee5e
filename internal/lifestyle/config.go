// internal/lifestyle/config.go
package lifestyle

import (
	"fmt"

	"github.com/everupward248/hackathon-oct25/internal/common/errors"
)

// HousingLocation distinguishes George Town center from the rest of the
// island.
type HousingLocation string

const (
	LocationCenter  HousingLocation = "center"
	LocationOutside HousingLocation = "outside"
)

type ChildcareType string

const (
	ChildcareDaycare     ChildcareType = "daycare"
	ChildcarePreschool   ChildcareType = "preschool"
	ChildcareAfterschool ChildcareType = "afterschool"
	ChildcareNone        ChildcareType = "none"
)

type TransportationType string

const (
	TransportCar    TransportationType = "car"
	TransportPublic TransportationType = "public"
	TransportBoth   TransportationType = "both"
)

type GroceryLevel string

const (
	GroceryBasic    GroceryLevel = "basic"
	GroceryModerate GroceryLevel = "moderate"
	GroceryPremium  GroceryLevel = "premium"
)

type DiningFrequency string

const (
	DiningOccasional DiningFrequency = "occasional"
	DiningRegular    DiningFrequency = "regular"
	DiningFrequent   DiningFrequency = "frequent"
)

type EntertainmentLevel string

const (
	EntertainmentMinimal  EntertainmentLevel = "minimal"
	EntertainmentModerate EntertainmentLevel = "moderate"
	EntertainmentActive   EntertainmentLevel = "active"
)

type SavingsGoal string

const (
	SavingsMinimal    SavingsGoal = "minimal"
	SavingsModerate   SavingsGoal = "moderate"
	SavingsAggressive SavingsGoal = "aggressive"
)

// Config is the user's declared lifestyle: an immutable snapshot per
// assessment. Callers replace the whole value rather than mutating fields.
type Config struct {
	// Housing
	Bedrooms        int             `json:"bedrooms"` // 0 = shared room
	HousingLocation HousingLocation `json:"housingLocation"`

	// Family
	FamilySize    int           `json:"familySize"`
	NumChildren   int           `json:"numChildren"` // children needing care
	ChildcareType ChildcareType `json:"childcareType,omitempty"`

	// Transportation
	TransportationType TransportationType `json:"transportationType"`

	// Food & dining
	GroceryLevel    GroceryLevel    `json:"groceryLevel"`
	DiningFrequency DiningFrequency `json:"diningFrequency"`

	// Entertainment
	EntertainmentLevel EntertainmentLevel `json:"entertainmentLevel"`
	HasGym             bool               `json:"hasGym,omitempty"`

	// Savings
	SavingsGoal SavingsGoal `json:"savingsGoal"`
}

// Validate fails fast on any tier the cost tables do not define, so an
// unrecognized tier surfaces as INVALID_CONFIGURATION instead of a silent
// zero lookup.
func (c Config) Validate() error {
	if c.Bedrooms < 0 {
		return errors.NewInvalidConfigurationError("bedrooms", fmt.Sprintf("must be >= 0, got %d", c.Bedrooms))
	}
	if c.FamilySize < 1 {
		return errors.NewInvalidConfigurationError("familySize", fmt.Sprintf("must be >= 1, got %d", c.FamilySize))
	}
	if c.NumChildren < 0 {
		return errors.NewInvalidConfigurationError("numChildren", fmt.Sprintf("must be >= 0, got %d", c.NumChildren))
	}
	if c.HousingLocation != LocationCenter && c.HousingLocation != LocationOutside {
		return errors.NewInvalidConfigurationError("housingLocation", string(c.HousingLocation))
	}
	switch c.ChildcareType {
	case ChildcareDaycare, ChildcarePreschool, ChildcareAfterschool, ChildcareNone, "":
	default:
		return errors.NewInvalidConfigurationError("childcareType", string(c.ChildcareType))
	}
	switch c.TransportationType {
	case TransportCar, TransportPublic, TransportBoth:
	default:
		return errors.NewInvalidConfigurationError("transportationType", string(c.TransportationType))
	}
	if _, ok := groceryCosts[c.GroceryLevel]; !ok {
		return errors.NewInvalidConfigurationError("groceryLevel", string(c.GroceryLevel))
	}
	if _, ok := diningCosts[c.DiningFrequency]; !ok {
		return errors.NewInvalidConfigurationError("diningFrequency", string(c.DiningFrequency))
	}
	if _, ok := entertainmentCosts[c.EntertainmentLevel]; !ok {
		return errors.NewInvalidConfigurationError("entertainmentLevel", string(c.EntertainmentLevel))
	}
	if _, ok := savingsCosts[c.SavingsGoal]; !ok {
		return errors.NewInvalidConfigurationError("savingsGoal", string(c.SavingsGoal))
	}
	return nil
}

// UsesChildcare reports whether childcare costs apply: at least one child
// needing care and a care type other than none.
func (c Config) UsesChildcare() bool {
	return c.NumChildren > 0 && c.ChildcareType != "" && c.ChildcareType != ChildcareNone
}
