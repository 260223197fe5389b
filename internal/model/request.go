package model

// AuditRequest is the wire form of the four habit parameters, as submitted
// by the HTML form, the JSON API or the CLI.
type AuditRequest struct {
	FamilySize          int     `json:"family_size"`
	ShowerMinutes       float64 `json:"shower_minutes"`
	LaundryLoadsPerWeek float64 `json:"laundry_loads_per_week"`
	ROPurifier          string  `json:"ro_purifier"`
}

const (
	ROPurifierYes = "Yes"
	ROPurifierNo  = "No"
)

// ParseROUsage reports whether the RO waste term applies. Only the exact
// string "Yes" enables it.
func ParseROUsage(s string) bool {
	return s == ROPurifierYes
}

func (r *AuditRequest) Input() HouseholdInput {
	return HouseholdInput{
		FamilySize:          r.FamilySize,
		ShowerMinutes:       r.ShowerMinutes,
		LaundryLoadsPerWeek: r.LaundryLoadsPerWeek,
		UsesRO:              ParseROUsage(r.ROPurifier),
	}
}
