// Package harness drives the allocator benchmark: it rebuilds the driver for
// each trace's workload class, replays the trace and averages the reported
// performance index.
package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/perfgo/tracebench/metrics"
	"github.com/rs/zerolog"
)

// PerfIndexMetric is the metric averaged across all traces.
const PerfIndexMetric = "perfidx"

// Config holds the settings of one benchmark batch.
type Config struct {
	TraceDir       string // directory scanned when TraceFile is empty
	TraceFile      string // single trace, bypasses TraceDir
	ExpectedTraces int    // warn when TraceDir holds fewer entries
	WorkDir        string // directory the build and run commands execute in
	MakeTarget     string // make target producing the driver
	Binary         string // driver binary, relative to WorkDir
	CQRun          bool   // route runs through Wrapper
	Wrapper        string
}

func (c Config) withDefaults() Config {
	if c.TraceDir == "" {
		c.TraceDir = "traces"
	}
	if c.ExpectedTraces == 0 {
		c.ExpectedTraces = DefaultExpectedTraces
	}
	if c.WorkDir == "" {
		c.WorkDir = "."
	}
	if c.MakeTarget == "" {
		c.MakeTarget = "mdriver"
	}
	if c.Binary == "" {
		c.Binary = "./mdriver"
	}
	if c.Wrapper == "" {
		c.Wrapper = "cqrun"
	}
	return c
}

// Harness runs a batch of traces sequentially.
type Harness struct {
	logger zerolog.Logger
	cfg    Config
	exec   Executor
	parser *metrics.Parser
}

// New creates a harness. A nil executor falls back to the shell.
func New(logger zerolog.Logger, cfg Config, exec Executor) *Harness {
	if exec == nil {
		exec = NewShellExecutor()
	}
	return &Harness{
		logger: logger,
		cfg:    cfg.withDefaults(),
		exec:   exec,
		parser: metrics.New(),
	}
}

// Config returns the effective configuration.
func (h *Harness) Config() Config {
	return h.cfg
}

// Run processes every trace in order and returns the average performance
// index. Report lines are written to out. The first build or run failure
// aborts the batch.
func (h *Harness) Run(ctx context.Context, out io.Writer) (float64, error) {
	traces, err := h.locateTraces(out)
	if err != nil {
		return 0, err
	}

	var agg Aggregate
	for _, trace := range traces {
		if err := h.processTrace(ctx, trace, &agg, out); err != nil {
			var mismatch *PatternMismatchError
			if errors.As(err, &mismatch) {
				continue
			}
			return 0, err
		}
	}

	mean, err := agg.Mean()
	if err != nil {
		return 0, err
	}

	h.logger.Info().
		Int("traces", agg.Count()).
		Float64("total", agg.Total()).
		Float64("average", mean).
		Msg("Benchmark completed")

	return mean, nil
}

// processTrace builds, runs and parses a single trace, adding its perfidx to
// agg. A PatternMismatchError means the trace was skipped.
func (h *Harness) processTrace(ctx context.Context, trace string, agg *Aggregate, out io.Writer) error {
	fmt.Fprintf(out, "trace_file: %s\n", trace)

	class, err := ExtractClass(trace)
	if err != nil {
		fmt.Fprintf(out, "# Trace file %s does not match %s pattern.\n", trace, ClassPattern)
		h.logger.Warn().Str("trace", trace).Msg("Skipping trace with unexpected name")
		return err
	}
	desc := TraceDescriptor{Path: trace, Class: class}

	if err := h.buildDriver(ctx, desc); err != nil {
		return err
	}

	res, err := h.runDriver(ctx, desc, out)
	if err != nil {
		return err
	}

	result, err := h.parser.Parse(strings.NewReader(res.Output))
	if err != nil {
		return &MetricError{Trace: trace, Metric: PerfIndexMetric, Err: err}
	}

	perfidx, err := perfIndex(result)
	if err != nil {
		return &MetricError{Trace: trace, Metric: PerfIndexMetric, Err: err}
	}
	if _, ok := result.Get(PerfIndexMetric); !ok {
		h.logger.Warn().Str("trace", trace).Msg("Driver reported no perfidx, counting it as 0")
	}

	agg.Add(perfidx)
	h.logger.Info().
		Str("trace", trace).
		Float64("perfidx", perfidx).
		Msg("Trace processed")
	return nil
}

// perfIndex returns the perfidx of a run. A missing metric counts as 0.
func perfIndex(result metrics.Map) (float64, error) {
	v, ok := result.Get(PerfIndexMetric)
	if !ok {
		return 0, nil
	}
	f, ok := v.Float64()
	if !ok {
		return 0, fmt.Errorf("value %q is not numeric", v.String())
	}
	return f, nil
}
