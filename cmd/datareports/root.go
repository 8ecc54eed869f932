package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"datareports/internal/cli"
	"datareports/internal/config"
	applog "datareports/internal/log"
	"datareports/internal/services"
)

// app holds what PersistentPreRunE builds for the subcommands.
type app struct {
	configPath   string
	dataDir      string
	processedDir string
	logLevel     string

	cfg    *config.Config
	logger *applog.Logger
	stop   context.CancelFunc
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "datareports",
		Short: "Turn fetched data files into plain text reports",
		Long: `datareports reads the files in the data folder and writes one
plain text report per pipeline into the processed folder:

  csv    sum numeric columns per category
  excel  rank the rows of a workbook and keep the top N
  json   extract one team's season rows from a league table
  text   count a word in a text file
  fetch  download the population workbook into the data folder

Configuration comes from the environment (and a .env file), an optional
YAML file given with --config, and the flags below, in that order.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	flags.StringVar(&a.dataDir, "data-dir", "", "folder the input files are read from")
	flags.StringVar(&a.processedDir, "processed-dir", "", "folder the reports are written to")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newPipelineCmd(a, services.PipelineCSV, "Sum numeric CSV columns per category",
			func(cfg *config.Config, logger *applog.Logger) services.Pipeline {
				return services.NewCategoryReportService(cfg, logger)
			}),
		newPipelineCmd(a, services.PipelineExcel, "Rank workbook rows and keep the top N",
			func(cfg *config.Config, logger *applog.Logger) services.Pipeline {
				return services.NewPopulationReportService(cfg, logger)
			}),
		newPipelineCmd(a, services.PipelineJSON, "Extract one team's seasons from a league table",
			func(cfg *config.Config, logger *applog.Logger) services.Pipeline {
				return services.NewSeasonReportService(cfg, logger)
			}),
		newPipelineCmd(a, services.PipelineText, "Count a word in a text file",
			func(cfg *config.Config, logger *applog.Logger) services.Pipeline {
				return services.NewWordReportService(cfg, logger)
			}),
		newPipelineCmd(a, services.PipelineFetch, "Download the population workbook",
			func(cfg *config.Config, logger *applog.Logger) services.Pipeline {
				return services.NewFetchService(cfg, nil, logger)
			}),
		newAllCmd(a),
	)

	return rootCmd, a
}

// setup loads the configuration and the logger, then installs the signal
// handler on the command context.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(a.configPath, a.applyFlags)
	if err != nil {
		return err
	}

	logger, err := cli.SetupLogger(cfg.Log)
	if err != nil {
		return err
	}
	logger = logger.With(applog.FieldRunID, uuid.NewString())

	ctx, stop := cli.SignalContext(cmd.Context(), logger)
	cmd.SetContext(applog.NewContext(ctx, logger))

	a.cfg = cfg
	a.logger = logger
	a.stop = stop

	logger.Debug("Configuration loaded",
		"data_dir", cfg.Paths.DataDir,
		"processed_dir", cfg.Paths.ProcessedDir,
		"command", cmd.Name(),
	)
	return nil
}

func (a *app) applyFlags(cfg *config.Config) {
	if a.dataDir != "" {
		cfg.Paths.DataDir = a.dataDir
	}
	if a.processedDir != "" {
		cfg.Paths.ProcessedDir = a.processedDir
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
}

func (a *app) close() {
	if a.stop != nil {
		a.stop()
	}
}

// reportError logs the parts of err not already logged where they
// happened. Errors raised before the logger exists go to w.
func (a *app) reportError(w io.Writer, err error) {
	if a.logger == nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	for _, e := range services.Unlogged(err) {
		a.logger.Error("Command failed", applog.FieldError, e)
	}
}

// printResults writes one line per produced file.
func printResults(w io.Writer, results ...services.Result) {
	for _, r := range results {
		if r.Written {
			fmt.Fprintf(w, "%s: %s\n", r.Pipeline, r.Output)
		}
	}
}
