package rules

import "water-advisor/internal/model"

// Rule is one candidate primary recommendation. Rules are evaluated in
// registry order and the first one whose Matches returns true wins.
type Rule interface {
	Matches(b *model.Breakdown) bool
	Recommend(b *model.Breakdown) model.Recommendation
}

const (
	CodeShower     = "SHOWER_AERATOR"
	CodeROWaste    = "RO_WASTE_BUCKET"
	CodeLaundry    = "LAUNDRY_FULL_LOADS"
	CodeLeakyTap   = "LEAKY_TAP"
	CodeBrushTeeth = "TAP_OFF_WHILE_BRUSHING"
)
