package main

import (
	"errors"

	"github.com/spf13/cobra"

	"datareports/internal/config"
	applog "datareports/internal/log"
	"datareports/internal/services"
)

// pipelineFactory builds a pipeline from the loaded configuration and the
// logger carried by the command context.
type pipelineFactory func(cfg *config.Config, logger *applog.Logger) services.Pipeline

func newPipelineCmd(a *app, name, short string, build pipelineFactory) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			res, err := build(a.cfg, applog.FromContext(ctx)).Run(ctx)
			printResults(cmd.OutOrStdout(), res)
			return err
		},
	}
}

func newAllCmd(a *app) *cobra.Command {
	var (
		withFetch   bool
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every report pipeline",
		Long: `Runs the csv, excel, json and text pipelines concurrently. A failing
pipeline does not stop the others. With --fetch the workbook is
downloaded first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := applog.FromContext(ctx)
			out := cmd.OutOrStdout()

			var errs services.RunErrors
			if withFetch {
				res, err := services.NewFetchService(a.cfg, nil, logger).Run(ctx)
				printResults(out, res)
				if err != nil {
					errs = append(errs, err)
				}
			}

			runner := services.NewRunner(logger,
				services.NewCategoryReportService(a.cfg, logger),
				services.NewPopulationReportService(a.cfg, logger),
				services.NewSeasonReportService(a.cfg, logger),
				services.NewWordReportService(a.cfg, logger),
			)
			runner.SetConcurrency(concurrency)

			results, err := runner.Run(ctx)
			printResults(out, results...)
			var failed services.RunErrors
			if errors.As(err, &failed) {
				errs = append(errs, failed...)
			} else if err != nil {
				errs = append(errs, err)
			}
			if len(errs) > 0 {
				return errs
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withFetch, "fetch", false, "download the workbook before running")
	cmd.Flags().IntVar(&concurrency, "concurrency", services.DefaultConcurrency, "pipelines run at once (0 for no limit)")
	return cmd
}
