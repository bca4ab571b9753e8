package cli

// This file contains the benchmark action: it turns the flags into a
// harness configuration, runs every trace and prints the final average.

import (
	"fmt"

	"github.com/perfgo/tracebench/harness"
	"github.com/urfave/cli/v2"
)

func (a *App) harnessConfig(ctx *cli.Context) harness.Config {
	return harness.Config{
		TraceDir:       ctx.String("trace-dir"),
		TraceFile:      ctx.String("trace-file"),
		ExpectedTraces: ctx.Int("expected-traces"),
		WorkDir:        ctx.String("workdir"),
		MakeTarget:     ctx.String("make-target"),
		Binary:         ctx.String("binary"),
		CQRun:          ctx.Bool("cqrun"),
		Wrapper:        ctx.String("wrapper"),
	}
}

func (a *App) bench(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", ctx.Args().Slice())
	}

	cfg := a.harnessConfig(ctx)

	logMsg := a.logger.Debug().
		Str("workdir", cfg.WorkDir).
		Bool("cqrun", cfg.CQRun)
	if cfg.TraceFile != "" {
		logMsg.Str("trace_file", cfg.TraceFile)
	} else {
		logMsg.Str("trace_dir", cfg.TraceDir)
	}
	logMsg.Msg("Starting benchmark")

	h := harness.New(a.logger, cfg, a.executor)
	avg, err := h.Run(ctx.Context, a.out)
	if err != nil {
		a.logger.Error().Err(err).Msg("Benchmark aborted")
		return err
	}

	fmt.Fprintf(a.out, "average performance index: %s\n", harness.FormatAverage(avg))
	return nil
}
