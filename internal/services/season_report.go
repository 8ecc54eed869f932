package services

import (
	"context"

	"datareports/internal/config"
	"datareports/internal/league"
	applog "datareports/internal/log"
	"datareports/internal/report"
)

// SeasonReportService extracts one team's season rows from the league
// table.
type SeasonReportService struct {
	cfg    config.JSONConfig
	input  string
	output string
	logger *applog.Logger
	events *applog.StructuredLogger
}

func NewSeasonReportService(cfg *config.Config, logger *applog.Logger) *SeasonReportService {
	return &SeasonReportService{
		cfg:    cfg.JSON,
		input:  cfg.DataPath(cfg.JSON.Input),
		output: cfg.ProcessedPath(cfg.JSON.Output),
		logger: logger.WithComponent(applog.ComponentLeague),
		events: applog.NewStructuredLogger(logger.WithComponent(applog.ComponentReport)),
	}
}

func (s *SeasonReportService) Name() string { return PipelineJSON }

// Run writes the report only when the team appears in at least one season.
func (s *SeasonReportService) Run(ctx context.Context) (Result, error) {
	res := Result{Pipeline: s.Name(), Input: s.input, Output: s.output}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	records, err := league.TeamSeasonsFile(s.input, s.cfg.Team, s.logger)
	if err != nil {
		return res, err
	}
	if len(records) == 0 {
		s.logger.WarnContext(ctx, "No data found for team", "team", s.cfg.Team, applog.FieldInput, s.input)
		return res, nil
	}

	if err := report.WriteFile(s.output, report.RenderSeasonRecords(s.cfg.Team, records)); err != nil {
		return res, err
	}
	res.Written = true
	res.Count = len(records)
	s.events.LogReportWritten(ctx, s.Name(), s.input, s.output, res.Count)

	return res, nil
}
