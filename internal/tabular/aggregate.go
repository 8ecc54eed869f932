package tabular

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"datareports/internal/core"
	applog "datareports/internal/log"
)

// Logger receives the events emitted while aggregating.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// RowSource yields records until io.EOF.
type RowSource interface {
	Read() (Record, error)
}

// Stats counts how the input rows were handled.
type Stats struct {
	Rows      int // data rows read
	Blank     int // skipped for an empty category
	Malformed int // skipped for an unparsable numeric field
}

// Aggregate sums the numeric values of every record per trimmed category.
//
// A record with a blank category is skipped silently. A record where any
// numeric value fails to parse is skipped as a whole, even if the other
// values were valid, and a warning is logged. An empty value counts as 0.
//
// If src fails with anything other than io.EOF the partial sums are
// discarded: the returned aggregation is empty and the error is returned.
func Aggregate(src RowSource, fields []string, logger Logger) (*core.Aggregation, Stats, error) {
	var stats Stats
	agg := core.NewAggregation(len(fields))
	values := make([]float64, len(fields))

	for {
		rec, err := src.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return core.NewAggregation(len(fields)), Stats{}, err
		}
		stats.Rows++

		category := strings.TrimSpace(rec.Category)
		if category == "" {
			stats.Blank++
			continue
		}

		if err := parseValues(rec, fields, values); err != nil {
			stats.Malformed++
			row := applog.NewFields().WithRow(rec.Line, rec.Raw).WithOperation(applog.OpParse).WithError(err)
			row[applog.FieldField] = err.Field
			logger.Warn("Skipping invalid row", row.ToSlice()...)
			continue
		}
		agg.Add(category, values)
	}

	return agg, stats, nil
}

// parseValues fills out from rec.Values; the first failure aborts.
func parseValues(rec Record, fields []string, out []float64) *core.MalformedRowError {
	for i := range out {
		raw := ""
		if i < len(rec.Values) {
			raw = rec.Values[i]
		}
		v, err := core.ParseMeasure(raw)
		if err != nil {
			name := ""
			if i < len(fields) {
				name = fields[i]
			}
			return &core.MalformedRowError{Line: rec.Line, Field: name, Value: raw, Err: err}
		}
		out[i] = v
	}
	return nil
}

// AggregateFile opens the CSV file at path and aggregates it with schema.
//
// A zero-byte file yields an empty aggregation and no error. When the file
// cannot be opened or decoded an error event is logged, an empty
// aggregation is returned, and the error wraps core.ErrSourceUnavailable.
// Callers should not log it again.
func AggregateFile(path string, schema Schema, logger Logger) (*core.Aggregation, Stats, error) {
	empty := core.NewAggregation(len(schema.NumericFields))

	fail := func(err error) (*core.Aggregation, Stats, error) {
		logger.Error("Error processing CSV file",
			applog.FieldInput, path, applog.FieldOperation, applog.OpAggregate, applog.FieldError, err)
		return empty, Stats{}, fmt.Errorf("%w: %s: %w", core.ErrSourceUnavailable, path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fail(err)
	}
	defer f.Close()

	r, err := NewReader(f, schema)
	if errors.Is(err, ErrEmptyInput) {
		return empty, Stats{}, nil
	}
	if err != nil {
		return fail(err)
	}

	agg, stats, err := Aggregate(r, schema.NumericFields, logger)
	if err != nil {
		return fail(err)
	}
	return agg, stats, nil
}

// IsSourceUnavailable reports whether err is a whole-input failure.
func IsSourceUnavailable(err error) bool {
	return errors.Is(err, core.ErrSourceUnavailable)
}
