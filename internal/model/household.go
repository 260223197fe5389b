package model

// HouseholdInput holds the habits of one household for a single audit.
// Nothing here is retained between calls.
type HouseholdInput struct {
	FamilySize          int
	ShowerMinutes       float64
	LaundryLoadsPerWeek float64
	UsesRO              bool
}

// Breakdown is the daily volume per consumption category, in liters.
type Breakdown struct {
	ShowerLiters    float64 `json:"shower_liters" yaml:"shower_liters"`
	FlushLiters     float64 `json:"flush_liters" yaml:"flush_liters"`
	LaundryLiters   float64 `json:"laundry_liters" yaml:"laundry_liters"`
	ROWasteLiters   float64 `json:"ro_waste_liters" yaml:"ro_waste_liters"`
	TotalLiters     float64 `json:"total_liters" yaml:"total_liters"`
	PerPersonLiters float64 `json:"per_person_liters" yaml:"per_person_liters"`
}

type Status string

const (
	StatusExcellent Status = "EXCELLENT"
	StatusHigh      Status = "HIGH"
)

type Recommendation struct {
	Code    string `json:"code" yaml:"code"`
	Heading string `json:"heading" yaml:"heading"`
	Advice  string `json:"advice" yaml:"advice"`
}

type Report struct {
	Breakdown Breakdown
	Status    Status
	Primary   Recommendation
	Secondary Recommendation
}
