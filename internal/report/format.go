// Package report renders pipeline results as plain text and writes them
// to the processed folder.
package report

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// NumberStyle selects how sums are rendered.
type NumberStyle string

const (
	Plain   NumberStyle = "plain"   // 1234567.89
	Grouped NumberStyle = "grouped" // 1,234,567.89
)

// Column describes one summed field in a category report.
type Column struct {
	Label    string
	Decimals int
}

// FormatNumber renders v rounded to decimals places in the given style.
func FormatNumber(v float64, decimals int, style NumberStyle) string {
	if decimals < 0 {
		decimals = 0
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if style != Grouped {
		return s
	}

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		// NaN, Inf, or beyond int64
		return sign + s
	}
	out := sign + humanize.Comma(n)
	if hasFrac {
		out += "." + frac
	}
	return out
}

// FormatCount renders n with thousands separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}
