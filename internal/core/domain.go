package core

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// CategoryTotals holds the running sums for one category key.
	CategoryTotals struct {
		Category string
		Totals   []float64
		Rows     int // contributing rows, always >= 1 once the key exists
	}

	// RankedEntry is one line of a top-N listing.
	RankedEntry struct {
		Name  string
		Value int64
	}

	// SeasonRecord is one team's standing in one season. Stats keep the
	// source text so numbers render as they were written.
	SeasonRecord struct {
		Season string
		Team   string
		Stats  map[string]string
	}

	// WordCount is the number of occurrences of Word in a text.
	WordCount struct {
		Word  string
		Count int
	}
)

var (
	ErrSourceUnavailable     = errors.New("source unavailable")
	ErrDestinationUnwritable = errors.New("destination unwritable")
	ErrMissingColumn         = errors.New("missing column")
	ErrEmptyCategory         = errors.New("empty category")
	ErrInvalidNumber         = errors.New("invalid number")
)

// MalformedRowError reports a row dropped because one of its numeric
// fields could not be parsed.
type MalformedRowError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("line %d: field %q value %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// Validate checks the entry invariants.
func (c CategoryTotals) Validate() error {
	if strings.TrimSpace(c.Category) == "" {
		return ErrEmptyCategory
	}
	if c.Rows < 1 {
		return errors.New("category without contributing rows")
	}
	return nil
}

// Total returns the i-th sum, or zero if the entry has fewer fields.
func (c CategoryTotals) Total(i int) float64 {
	if i < 0 || i >= len(c.Totals) {
		return 0
	}
	return c.Totals[i]
}

// StatField maps a season table key to its report label.
type StatField struct {
	Key   string
	Label string
}

// SeasonStatFields lists the per-season statistics in report order.
var SeasonStatFields = []StatField{
	{Key: "position", Label: "Position"},
	{Key: "played", Label: "Played"},
	{Key: "points", Label: "Points"},
	{Key: "goal_difference", Label: "Goal Difference"},
	{Key: "won", Label: "Won"},
	{Key: "draw", Label: "Draw"},
	{Key: "loss", Label: "Loss"},
	{Key: "goals_scored", Label: "Goals Scored"},
	{Key: "goals_against", Label: "Goals Against"},
}

// Stat returns the named statistic, or "N/A" if the source omitted it.
func (r SeasonRecord) Stat(key string) string {
	if v, ok := r.Stats[key]; ok {
		return v
	}
	return "N/A"
}
