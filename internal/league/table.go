// Package league extracts one team's rows from a multi-season league table
// stored as JSON.
package league

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"datareports/internal/core"
	applog "datareports/internal/log"
)

// Logger receives the events emitted while reading the table.
type Logger interface {
	Error(msg string, args ...any)
}

const unknownSeason = "Unknown Season"

type season struct {
	Season json.RawMessage  `json:"season"`
	Table  []map[string]any `json:"table"`
}

// name renders the season label. A missing key is unknownSeason, an
// explicit null is rendered like any other null value.
func (s season) name() (string, error) {
	if s.Season == nil {
		return unknownSeason, nil
	}
	dec := json.NewDecoder(bytes.NewReader(s.Season))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	return text(v), nil
}

// TeamSeasons returns the record of team in every season of the table
// read from r, in file order. Team names match exactly.
func TeamSeasons(r io.Reader, team string) ([]core.SeasonRecord, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var seasons []season
	if err := dec.Decode(&seasons); err != nil {
		return nil, fmt.Errorf("invalid JSON format: %w", err)
	}

	var out []core.SeasonRecord
	for _, s := range seasons {
		name, err := s.name()
		if err != nil {
			return nil, fmt.Errorf("invalid JSON format: %w", err)
		}
		for _, row := range s.Table {
			if t, _ := row["team"].(string); t != team {
				continue
			}
			stats := make(map[string]string, len(core.SeasonStatFields))
			for _, f := range core.SeasonStatFields {
				if v, ok := row[f.Key]; ok {
					stats[f.Key] = text(v)
				}
			}
			out = append(out, core.SeasonRecord{Season: name, Team: team, Stats: stats})
		}
	}
	return out, nil
}

// TeamSeasonsFile reads the table at path. Missing or malformed files are
// logged and yield a nil slice with the error.
func TeamSeasonsFile(path, team string, logger Logger) ([]core.SeasonRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		logger.Error("JSON file not found",
			applog.FieldInput, path, applog.FieldOperation, applog.OpLookup, applog.FieldError, err)
		return nil, fmt.Errorf("%w: %s: %w", core.ErrSourceUnavailable, path, err)
	}
	records, err := TeamSeasons(bytes.NewReader(b), team)
	if err != nil {
		logger.Error("Invalid JSON format",
			applog.FieldInput, path, applog.FieldOperation, applog.OpLookup, applog.FieldError, err)
		return nil, fmt.Errorf("%w: %s: %w", core.ErrSourceUnavailable, path, err)
	}
	return records, nil
}

// text renders a decoded JSON value the way it appeared in the source.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return "None"
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "True"
		}
		return "False"
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
