package rules

import "water-advisor/internal/model"

// Priority order, not magnitude ranking.
var registry = []Rule{
	&ShowerRule{},
	&ROWasteRule{},
	&LaundryRule{},
	&LeakyTapRule{},
}

// Primary returns the recommendation of the first matching rule.
func Primary(b *model.Breakdown) model.Recommendation {
	for _, r := range registry {
		if r.Matches(b) {
			return r.Recommend(b)
		}
	}
	return (&LeakyTapRule{}).Recommend(b)
}

// Secondary is appended to every report regardless of the primary rule.
func Secondary() model.Recommendation {
	return model.Recommendation{
		Code:    CodeBrushTeeth,
		Heading: "SECONDARY TIP",
		Advice:  "Turn off the tap while brushing teeth to save 15L/day.",
	}
}
