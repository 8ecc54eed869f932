package services

import (
	"context"
	"errors"
	"fmt"

	"datareports/internal/config"
	"datareports/internal/core"
	"datareports/internal/fetch"
	applog "datareports/internal/log"
	"datareports/internal/spreadsheet"
)

// FetchService downloads the population workbook into the data folder and
// saves a cleaned copy where the Excel pipeline reads it.
type FetchService struct {
	client  *fetch.Client
	url     string
	dataDir string
	rawName string
	cleaned string
	logger  *applog.Logger
	events  *applog.StructuredLogger
}

func NewFetchService(cfg *config.Config, client *fetch.Client, logger *applog.Logger) *FetchService {
	if client == nil {
		client = fetch.New(cfg.Fetch.Timeout)
	}
	return &FetchService{
		client:  client,
		url:     cfg.Fetch.URL,
		dataDir: cfg.Paths.DataDir,
		rawName: cfg.Fetch.RawName,
		cleaned: cfg.DataPath(cfg.Excel.Input),
		logger:  logger.WithComponent(applog.ComponentFetch),
		events:  applog.NewStructuredLogger(logger.WithComponent(applog.ComponentFetch)),
	}
}

func (s *FetchService) Name() string { return PipelineFetch }

// Run fetches the workbook. A failed download is returned; a failed clean
// is logged and the raw download is kept as the output.
func (s *FetchService) Run(ctx context.Context) (Result, error) {
	res := Result{Pipeline: s.Name(), Input: s.url}

	path, n, err := s.client.Fetch(ctx, s.url, s.dataDir, s.rawName)
	if err != nil {
		fields := applog.LogFields{applog.FieldURL: s.url}
		var statusErr *fetch.HTTPStatusError
		if errors.As(err, &statusErr) {
			fields[applog.FieldStatus] = statusErr.StatusCode
		}
		s.events.LogError(ctx, "Failed to fetch Excel file", err, applog.OpFetch, fields)
		return res, fmt.Errorf("%w: %s: %w", core.ErrSourceUnavailable, s.url, err)
	}
	s.logger.InfoContext(ctx, "Excel file fetched",
		applog.FieldURL, s.url, applog.FieldOutput, path, applog.FieldBytes, n)
	res.Output = path
	res.Written = true
	res.Count = 1

	if err := spreadsheet.CleanWorkbook(path, s.cleaned); err != nil {
		s.events.LogError(ctx, "Failed to clean Excel file", err, applog.OpClean,
			applog.NewFields().WithPaths(path, s.cleaned))
		return res, nil
	}
	s.logger.InfoContext(ctx, "Excel file cleaned", applog.FieldInput, path, applog.FieldOutput, s.cleaned)
	res.Output = s.cleaned

	return res, nil
}
