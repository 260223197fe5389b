package rules

import "water-advisor/internal/model"

const laundryAlertLiters = 200

type LaundryRule struct{}

func (r *LaundryRule) Matches(b *model.Breakdown) bool {
	return b.LaundryLiters > laundryAlertLiters
}

func (r *LaundryRule) Recommend(_ *model.Breakdown) model.Recommendation {
	return model.Recommendation{
		Code:    CodeLaundry,
		Heading: "BIGGEST WASTE: LAUNDRY",
		Advice:  "Fix: Run the machine only when fully loaded.",
	}
}
