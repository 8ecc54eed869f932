package spreadsheet

import (
	"fmt"
	"sort"
	"strings"

	"datareports/internal/core"
	applog "datareports/internal/log"
)

// Logger receives the events emitted while ranking.
type Logger interface {
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// RankOptions selects the rows and columns to rank.
type RankOptions struct {
	MinRow      int    // 1-based, inclusive
	MaxRow      int    // 1-based, inclusive
	NameColumn  string // column letter
	ValueColumn string // column letter
	TopN        int
}

// Rank turns rows into entries sorted by value, largest first, and keeps
// the first n. Rows with an empty name or value are skipped; values that
// are not integers are skipped with a warning. Ties keep row order.
func Rank(rows [][]string, nameIdx, valueIdx, n int, logger Logger) []core.RankedEntry {
	entries := make([]core.RankedEntry, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(cell(row, nameIdx))
		raw := strings.TrimSpace(cell(row, valueIdx))
		if name == "" || raw == "" {
			continue
		}
		v, err := core.ParseCount(raw)
		if err != nil {
			logger.Warn("Skipping invalid population value", applog.FieldValue, raw, applog.FieldCategory, name)
			continue
		}
		if v == 0 {
			continue
		}
		entries = append(entries, core.RankedEntry{Name: name, Value: v})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// TopEntriesFile ranks the active sheet of the workbook at path. When the
// workbook cannot be read an error is logged and an empty list returned
// along with the error.
func TopEntriesFile(path string, opts RankOptions, logger Logger) ([]core.RankedEntry, error) {
	fail := func(err error) ([]core.RankedEntry, error) {
		logger.Error("Error processing Excel file",
			applog.FieldInput, path, applog.FieldOperation, applog.OpRank, applog.FieldError, err)
		return []core.RankedEntry{}, fmt.Errorf("%w: %s: %w", core.ErrSourceUnavailable, path, err)
	}

	nameIdx, err := ColumnIndex(opts.NameColumn)
	if err != nil {
		return fail(err)
	}
	valueIdx, err := ColumnIndex(opts.ValueColumn)
	if err != nil {
		return fail(err)
	}

	w, err := Open(path)
	if err != nil {
		return fail(err)
	}
	defer w.Close()

	rows, err := w.Rows(w.ActiveSheet(), opts.MinRow, opts.MaxRow)
	if err != nil {
		return fail(err)
	}
	return Rank(rows, nameIdx, valueIdx, opts.TopN, logger), nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
