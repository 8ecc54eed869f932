package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datareports/internal/core"
	applog "datareports/internal/log"
)

type fakePipeline struct {
	name  string
	delay time.Duration
	err   error
	runs  *atomic.Int32
}

func (p fakePipeline) Name() string { return p.name }

func (p fakePipeline) Run(ctx context.Context) (Result, error) {
	if p.runs != nil {
		p.runs.Add(1)
	}
	time.Sleep(p.delay)
	return Result{Pipeline: p.name, Output: p.name + ".txt", Written: p.err == nil}, p.err
}

func TestRunner_AllSucceed(t *testing.T) {
	var runs atomic.Int32
	r := NewRunner(applog.Discard(),
		fakePipeline{name: "a", delay: 20 * time.Millisecond, runs: &runs},
		fakePipeline{name: "b", runs: &runs},
		fakePipeline{name: "c", runs: &runs},
	)

	results, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, int32(3), runs.Load())
	for i, name := range []string{"a", "b", "c"} {
		assert.Equal(t, name, results[i].Pipeline, "results keep pipeline order")
	}
}

func TestRunner_FailuresDoNotStopOthers(t *testing.T) {
	var runs atomic.Int32
	sourceErr := fmt.Errorf("%w: data/x.csv: missing", core.ErrSourceUnavailable)
	writeErr := fmt.Errorf("%w: disk full", core.ErrDestinationUnwritable)

	r := NewRunner(applog.Discard(),
		fakePipeline{name: "csv", err: sourceErr, runs: &runs},
		fakePipeline{name: "excel", err: writeErr, runs: &runs},
		fakePipeline{name: "text", delay: 10 * time.Millisecond, runs: &runs},
	)
	r.SetConcurrency(1)

	results, err := r.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(3), runs.Load())
	assert.True(t, results[2].Written)

	var many RunErrors
	require.True(t, errors.As(err, &many))
	assert.Len(t, many, 2)
	assert.ErrorIs(t, err, core.ErrSourceUnavailable)
	assert.ErrorIs(t, err, core.ErrDestinationUnwritable)
	assert.Contains(t, err.Error(), "excel: ")

	unlogged := Unlogged(err)
	require.Len(t, unlogged, 1)
	assert.ErrorIs(t, unlogged[0], core.ErrDestinationUnwritable)
}

func TestUnlogged(t *testing.T) {
	assert.Nil(t, Unlogged(nil))

	source := fmt.Errorf("%w: a.csv: %w", core.ErrSourceUnavailable, errors.New("no such file"))
	assert.Empty(t, Unlogged(source), "a source error with a wrapped cause is already logged")

	plain := errors.New("boom")
	assert.Equal(t, []error{plain}, Unlogged(plain))
}
