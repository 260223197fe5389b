package rules

import (
	"fmt"

	"water-advisor/internal/model"
)

type ShowerRule struct{}

func (r *ShowerRule) Matches(b *model.Breakdown) bool {
	return b.ShowerLiters > b.FlushLiters && b.ShowerLiters > b.LaundryLiters
}

func (r *ShowerRule) Recommend(b *model.Breakdown) model.Recommendation {
	return model.Recommendation{
		Code:    CodeShower,
		Heading: fmt.Sprintf("BIGGEST WASTE: SHOWERS (%s L/day)", model.TruncatedLiters(b.ShowerLiters)),
		Advice:  "Fix: Install a low-flow aerator (Cost: ₹150). It cuts flow by 50%.",
	}
}
