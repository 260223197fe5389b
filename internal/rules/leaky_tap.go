package rules

import "water-advisor/internal/model"

// LeakyTapRule is the fallback and always matches.
type LeakyTapRule struct{}

func (r *LeakyTapRule) Matches(_ *model.Breakdown) bool {
	return true
}

func (r *LeakyTapRule) Recommend(_ *model.Breakdown) model.Recommendation {
	return model.Recommendation{
		Code:    CodeLeakyTap,
		Heading: "GENERAL TIP",
		Advice:  "Check for leaky taps; a single drip wastes 20L a day.",
	}
}
