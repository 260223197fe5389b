// Package report formats an audit as the plain-text block shown to users.
package report

import (
	"fmt"
	"strings"

	"water-advisor/internal/model"
)

const (
	banner  = "================================================"
	divider = "------------------------------"
)

// Render formats r. All figures are truncated toward zero, never rounded.
func Render(r *model.Report) string {
	var b strings.Builder

	b.WriteString("📊 YOUR WATER AUDIT REPORT\n")
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "💧 Total Household Usage: %s Liters/day\n", model.TruncatedLiters(r.Breakdown.TotalLiters))
	fmt.Fprintf(&b, "👤 Usage Per Person:      %s Liters/day\n", model.TruncatedLiters(r.Breakdown.PerPersonLiters))
	b.WriteString(banner + "\n")

	b.WriteString("\n")
	b.WriteString(statusLine(r.Status))
	b.WriteString("\n")

	b.WriteString("\n💡 RECOMMENDATIONS & FIXES:\n")
	b.WriteString(divider + "\n")
	writeTip(&b, 1, r.Primary)
	b.WriteString("\n")
	writeTip(&b, 2, r.Secondary)

	return b.String()
}

func statusLine(s model.Status) string {
	if s == model.StatusExcellent {
		return "✅ STATUS: EXCELLENT! You are water efficient."
	}
	return "⚠️ STATUS: HIGH USAGE. (Standard is 135L)."
}

func writeTip(b *strings.Builder, n int, rec model.Recommendation) {
	fmt.Fprintf(b, "%d. %s\n", n, rec.Heading)
	fmt.Fprintf(b, "   👉 %s\n", rec.Advice)
}
