package services

import (
	"context"

	"datareports/internal/config"
	applog "datareports/internal/log"
	"datareports/internal/report"
	"datareports/internal/spreadsheet"
)

// PopulationReportService ranks the rows of the population workbook and
// writes the top entries.
type PopulationReportService struct {
	cfg    config.ExcelConfig
	input  string
	output string
	logger *applog.Logger
	events *applog.StructuredLogger
}

func NewPopulationReportService(cfg *config.Config, logger *applog.Logger) *PopulationReportService {
	return &PopulationReportService{
		cfg:    cfg.Excel,
		input:  cfg.DataPath(cfg.Excel.Input),
		output: cfg.ProcessedPath(cfg.Excel.Output),
		logger: logger.WithComponent(applog.ComponentSpreadsheet),
		events: applog.NewStructuredLogger(logger.WithComponent(applog.ComponentReport)),
	}
}

func (s *PopulationReportService) Name() string { return PipelineExcel }

// Run writes the ranking, which is empty below the title when the
// workbook could not be read.
func (s *PopulationReportService) Run(ctx context.Context) (Result, error) {
	res := Result{Pipeline: s.Name(), Input: s.input, Output: s.output}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	entries, srcErr := spreadsheet.TopEntriesFile(s.input, spreadsheet.RankOptions{
		MinRow:      s.cfg.MinRow,
		MaxRow:      s.cfg.MaxRow,
		NameColumn:  s.cfg.NameColumn,
		ValueColumn: s.cfg.ValueColumn,
		TopN:        s.cfg.TopN,
	}, s.logger)

	if err := report.WriteFile(s.output, report.RenderRanking(s.cfg.Title, entries)); err != nil {
		return res, err
	}
	res.Written = true
	res.Count = len(entries)
	s.events.LogReportWritten(ctx, s.Name(), s.input, s.output, res.Count)

	return res, srcErr
}
