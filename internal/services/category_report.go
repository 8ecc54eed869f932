package services

import (
	"context"

	"datareports/internal/config"
	applog "datareports/internal/log"
	"datareports/internal/report"
	"datareports/internal/tabular"
)

// CategoryReportService sums the numeric CSV columns per category and
// writes one block per category.
type CategoryReportService struct {
	cfg    config.CSVConfig
	input  string
	output string
	logger *applog.Logger
	events *applog.StructuredLogger
}

func NewCategoryReportService(cfg *config.Config, logger *applog.Logger) *CategoryReportService {
	return &CategoryReportService{
		cfg:    cfg.CSV,
		input:  cfg.DataPath(cfg.CSV.Input),
		output: cfg.ProcessedPath(cfg.CSV.Output),
		logger: logger.WithComponent(applog.ComponentTabular),
		events: applog.NewStructuredLogger(logger.WithComponent(applog.ComponentReport)),
	}
}

func (s *CategoryReportService) Name() string { return PipelineCSV }

// Run aggregates the input and writes the report. When the input cannot be
// read the report still gets written with its title and no categories, and
// the source error is returned after it.
func (s *CategoryReportService) Run(ctx context.Context) (Result, error) {
	res := Result{Pipeline: s.Name(), Input: s.input, Output: s.output}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	schema := tabular.Schema{CategoryField: s.cfg.CategoryField, NumericFields: s.cfg.NumericFields}
	agg, stats, srcErr := tabular.AggregateFile(s.input, schema, s.logger)
	if srcErr == nil {
		s.logger.InfoContext(ctx, "CSV aggregated",
			applog.FieldInput, s.input,
			applog.FieldCount, agg.Len(),
			"rows", stats.Rows,
			applog.FieldSkipped, stats.Blank+stats.Malformed,
		)
	}

	content := report.RenderCategoryTotals(s.cfg.Title, s.columns(), agg.Entries(), report.NumberStyle(s.cfg.NumberStyle))
	if err := report.WriteFile(s.output, content); err != nil {
		return res, err
	}
	res.Written = true
	res.Count = agg.Len()
	s.events.LogReportWritten(ctx, s.Name(), s.input, s.output, res.Count)

	return res, srcErr
}

func (s *CategoryReportService) columns() []report.Column {
	cols := make([]report.Column, len(s.cfg.NumericFields))
	for i, field := range s.cfg.NumericFields {
		cols[i].Label = field
		if i < len(s.cfg.Labels) {
			cols[i].Label = s.cfg.Labels[i]
		}
		if i < len(s.cfg.Decimals) {
			cols[i].Decimals = s.cfg.Decimals[i]
		}
	}
	return cols
}
