package rules

import (
	"fmt"

	"water-advisor/internal/model"
)

// roWasteAlertLiters is the daily RO reject volume above which the purifier
// is called out as the biggest waste.
const roWasteAlertLiters = 50

type ROWasteRule struct{}

func (r *ROWasteRule) Matches(b *model.Breakdown) bool {
	return b.ROWasteLiters > roWasteAlertLiters
}

func (r *ROWasteRule) Recommend(b *model.Breakdown) model.Recommendation {
	return model.Recommendation{
		Code:    CodeROWaste,
		Heading: fmt.Sprintf("BIGGEST WASTE: RO PURIFIER (%s L/day)", model.TruncatedLiters(b.ROWasteLiters)),
		Advice:  "Fix: Keep a bucket under the waste pipe. Use it for cleaning.",
	}
}
