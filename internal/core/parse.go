// Package core provides the domain types shared by the report pipelines
// and the number parsing rules applied to raw cell text.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseMeasure converts a raw numeric cell to float64.
//
// An empty string is a missing value and yields 0. Anything else is trimmed
// and parsed as a float; whitespace-only input is not empty and fails.
//
// Examples:
//
//	ParseMeasure("")      -> 0, nil
//	ParseMeasure("12.5")  -> 12.5, nil
//	ParseMeasure(" 3 ")   -> 3, nil
//	ParseMeasure("  ")    -> 0, ErrInvalidNumber
//	ParseMeasure("n/a")   -> 0, ErrInvalidNumber
func ParseMeasure(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return v, nil
}

// ParseCount converts a raw integer cell that may carry thousands
// separators ("1,412,175,000") to int64. Floats with no fractional part
// ("1234.0") are accepted since spreadsheets often store counts that way.
func ParseCount(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, ErrInvalidNumber
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, ErrInvalidNumber
	}
	// Prevent overflow on conversion
	if f >= 1<<63 || f < -(1<<63) {
		return 0, ErrInvalidNumber
	}
	return int64(f), nil
}
