// Package services wires each data pipeline from its source file through
// the matching transform to a written report.
package services

import (
	"context"
	"errors"

	"datareports/internal/core"
)

// Pipeline names, also used as CLI subcommand names.
const (
	PipelineCSV   = "csv"
	PipelineExcel = "excel"
	PipelineJSON  = "json"
	PipelineText  = "text"
	PipelineFetch = "fetch"
)

// Pipeline produces one output from one input.
type Pipeline interface {
	Name() string
	Run(ctx context.Context) (Result, error)
}

// Result describes a finished pipeline run.
type Result struct {
	Pipeline string
	Input    string
	Output   string
	Count    int  // categories, entries, seasons or occurrences
	Written  bool // false when no output file was produced
}

// AlreadyLogged reports whether err has been logged where it happened.
// Source failures are logged by the component that hit them.
func AlreadyLogged(err error) bool {
	return errors.Is(err, core.ErrSourceUnavailable)
}

// RunErrors collects the failures of several pipelines.
type RunErrors []error

func (e RunErrors) Error() string {
	return errors.Join(e...).Error()
}

func (e RunErrors) Unwrap() []error { return e }

// Unlogged returns the parts of err that still need to be reported.
func Unlogged(err error) []error {
	if err == nil {
		return nil
	}
	var out []error
	var many RunErrors
	if errors.As(err, &many) {
		for _, e := range many {
			if !AlreadyLogged(e) {
				out = append(out, e)
			}
		}
		return out
	}
	if !AlreadyLogged(err) {
		out = append(out, err)
	}
	return out
}
