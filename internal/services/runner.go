package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	applog "datareports/internal/log"
)

// DefaultConcurrency bounds how many pipelines a Runner starts at once.
const DefaultConcurrency = 4

// Runner runs independent pipelines concurrently. Every pipeline runs to
// completion even when another one fails.
type Runner struct {
	pipelines   []Pipeline
	concurrency int
	logger      *applog.Logger
}

func NewRunner(logger *applog.Logger, pipelines ...Pipeline) *Runner {
	return &Runner{
		pipelines:   pipelines,
		concurrency: DefaultConcurrency,
		logger:      logger.WithComponent(applog.ComponentRunner),
	}
}

// SetConcurrency changes the pipeline limit; n < 1 means no limit.
func (r *Runner) SetConcurrency(n int) {
	r.concurrency = n
}

// Run returns one result per pipeline, in the order they were given. The
// error is a RunErrors holding every pipeline failure, or nil.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(r.pipelines))
	errs := make([]error, len(r.pipelines))

	var g errgroup.Group
	if r.concurrency > 0 {
		g.SetLimit(r.concurrency)
	}
	for i, p := range r.pipelines {
		g.Go(func() error {
			res, err := p.Run(ctx)
			results[i] = res
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", p.Name(), err)
			}
			r.logger.DebugContext(ctx, "Pipeline finished",
				applog.FieldPipeline, p.Name(),
				applog.FieldOutput, res.Output,
				"ok", err == nil,
			)
			return errs[i]
		})
	}

	_ = g.Wait()

	var failed RunErrors
	for _, e := range errs {
		if e != nil {
			failed = append(failed, e)
		}
	}
	r.logger.InfoContext(ctx, "Run complete",
		applog.FieldCount, len(r.pipelines),
		"failed", len(failed),
		applog.FieldDuration, time.Since(start).Milliseconds(),
	)

	if len(failed) > 0 {
		return results, failed
	}
	return results, nil
}
