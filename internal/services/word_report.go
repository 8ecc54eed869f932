package services

import (
	"context"

	"datareports/internal/config"
	applog "datareports/internal/log"
	"datareports/internal/report"
	"datareports/internal/textstat"
)

// WordReportService counts one word in a text file.
type WordReportService struct {
	cfg    config.TextConfig
	input  string
	output string
	logger *applog.Logger
	events *applog.StructuredLogger
}

func NewWordReportService(cfg *config.Config, logger *applog.Logger) *WordReportService {
	return &WordReportService{
		cfg:    cfg.Text,
		input:  cfg.DataPath(cfg.Text.Input),
		output: cfg.ProcessedPath(cfg.Text.Output),
		logger: logger.WithComponent(applog.ComponentText),
		events: applog.NewStructuredLogger(logger.WithComponent(applog.ComponentReport)),
	}
}

func (s *WordReportService) Name() string { return PipelineText }

// Run writes the count, 0 when the text could not be read.
func (s *WordReportService) Run(ctx context.Context) (Result, error) {
	res := Result{Pipeline: s.Name(), Input: s.input, Output: s.output}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	wc, srcErr := textstat.CountFile(s.input, s.cfg.Word, s.logger)

	if err := report.WriteFile(s.output, report.RenderWordCount(wc)); err != nil {
		return res, err
	}
	res.Written = true
	res.Count = wc.Count
	s.events.LogReportWritten(ctx, s.Name(), s.input, s.output, res.Count)

	return res, srcErr
}
