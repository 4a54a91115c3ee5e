// internal/lifestyle/tables.go
package lifestyle

// Cayman Islands cost-of-living reference data (monthly, KYD).
// Sourced from Numbeo, Expatistan and local listings. Treated as static
// input: read-only after package init.

// CostRange holds the observed min/max band and the average used for
// calculation.
type CostRange struct {
	Min float64
	Max float64
	Avg float64
}

// HousingTier keys the housing cost table.
type HousingTier string

const (
	HousingRoomShared HousingTier = "room_shared"
	Housing1BedCenter HousingTier = "1bed_center"
	Housing2BedCenter HousingTier = "2bed_center"
	Housing3BedCenter HousingTier = "3bed_center"
	Housing1BedOut    HousingTier = "1bed_outside"
	Housing2BedOut    HousingTier = "2bed_outside"
	Housing3BedOut    HousingTier = "3bed_outside"
)

var housingCosts = map[HousingTier]CostRange{
	Housing1BedCenter: {Min: 1800, Max: 2500, Avg: 2150},
	Housing2BedCenter: {Min: 2500, Max: 3500, Avg: 3000},
	Housing3BedCenter: {Min: 3500, Max: 5000, Avg: 4250},

	Housing1BedOut: {Min: 1200, Max: 1800, Avg: 1500},
	Housing2BedOut: {Min: 1800, Max: 2500, Avg: 2150},
	Housing3BedOut: {Min: 2500, Max: 3500, Avg: 3000},

	HousingRoomShared: {Min: 600, Max: 1000, Avg: 800},
}

// Utilities: power/water/waste base, internet, one mobile line.
var (
	utilityBasic    = CostRange{Min: 250, Max: 400, Avg: 325}
	utilityInternet = CostRange{Min: 75, Max: 125, Avg: 100}
	utilityMobile   = CostRange{Min: 50, Max: 100, Avg: 75}
)

// Transportation. totalCar = insurance + gas + maintenance.
var (
	publicTransport = CostRange{Min: 80, Max: 120, Avg: 100}
	carInsurance    = CostRange{Min: 125, Max: 250, Avg: 187.5}
	carGas          = CostRange{Min: 150, Max: 300, Avg: 225}
	carMaintenance  = CostRange{Min: 50, Max: 100, Avg: 75}
	totalCar        = CostRange{Min: 325, Max: 650, Avg: 487.5}
)

// Food, per person per month.
var groceryCosts = map[GroceryLevel]CostRange{
	GroceryBasic:    {Min: 400, Max: 600, Avg: 500},
	GroceryModerate: {Min: 600, Max: 800, Avg: 700},
	GroceryPremium:  {Min: 800, Max: 1200, Avg: 1000},
}

var diningCosts = map[DiningFrequency]CostRange{
	DiningOccasional: {Min: 100, Max: 200, Avg: 150}, // 4-8 times/month
	DiningRegular:    {Min: 300, Max: 500, Avg: 400}, // 12-20 times/month
	DiningFrequent:   {Min: 600, Max: 1000, Avg: 800},
}

// Entertainment, per person, plus a flat gym membership.
var entertainmentCosts = map[EntertainmentLevel]CostRange{
	EntertainmentMinimal:  {Min: 50, Max: 100, Avg: 75},
	EntertainmentModerate: {Min: 150, Max: 300, Avg: 225},
	EntertainmentActive:   {Min: 300, Max: 600, Avg: 450},
}

var gymCost = CostRange{Min: 80, Max: 150, Avg: 115}

// Childcare, per child per month.
var childcareCosts = map[ChildcareType]CostRange{
	ChildcareDaycare:     {Min: 800, Max: 1200, Avg: 1000},
	ChildcarePreschool:   {Min: 600, Max: 1000, Avg: 800},
	ChildcareAfterschool: {Min: 400, Max: 800, Avg: 600},
}

var savingsCosts = map[SavingsGoal]CostRange{
	SavingsMinimal:    {Min: 100, Max: 200, Avg: 150},
	SavingsModerate:   {Min: 300, Max: 500, Avg: 400},
	SavingsAggressive: {Min: 500, Max: 1000, Avg: 750},
}

// Other recurring costs. Clothing and healthcare scale per person,
// personal care is a flat household amount.
var (
	otherClothing     = CostRange{Min: 50, Max: 200, Avg: 125}
	otherHealthcare   = CostRange{Min: 100, Max: 300, Avg: 200}
	otherPersonalCare = CostRange{Min: 50, Max: 150, Avg: 100}
)

// housingTier resolves the housing table key for a bedroom count and area.
// Bedroom count 0 means a shared room; counts of 3 or more collapse into
// the 3-bed tier, which is the largest the data distinguishes.
func housingTier(bedrooms int, location HousingLocation) HousingTier {
	if bedrooms == 0 {
		return HousingRoomShared
	}
	center := location == LocationCenter
	switch {
	case bedrooms == 1 && center:
		return Housing1BedCenter
	case bedrooms == 1:
		return Housing1BedOut
	case bedrooms == 2 && center:
		return Housing2BedCenter
	case bedrooms == 2:
		return Housing2BedOut
	case center:
		return Housing3BedCenter
	default:
		return Housing3BedOut
	}
}
