package model

import (
	"errors"
	"math"
	"strconv"
)

// ErrNotFinite is returned for NaN and infinite inputs.
var ErrNotFinite = errors.New("must be a finite number")

// ParseFinite parses s as a float64 and rejects NaN and ±Inf.
func ParseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}
