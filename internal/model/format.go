package model

import (
	"math"
	"strconv"
)

// TruncatedLiters formats x truncated toward zero, without a fraction.
// Unlike int(x) it stays exact beyond the int64 range.
func TruncatedLiters(x float64) string {
	t := math.Trunc(x)
	if t == 0 {
		t = 0 // no "-0"
	}
	return strconv.FormatFloat(t, 'f', 0, 64)
}
