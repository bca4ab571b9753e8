package harness

// This file contains the report-mode run of the freshly built driver.

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

func (h *Harness) runDriver(ctx context.Context, desc TraceDescriptor, out io.Writer) (Result, error) {
	opts := RunOptions{
		Binary: h.cfg.Binary,
		Trace:  desc.Path,
	}
	if h.cfg.CQRun {
		opts.Wrapper = h.cfg.Wrapper
	}
	command := RunCommand(opts)

	h.logger.Debug().
		Str("command", command).
		Str("dir", h.cfg.WorkDir).
		Msg("Executing driver")

	start := time.Now()
	res, err := h.exec.Execute(ctx, command, h.cfg.WorkDir)
	if err != nil {
		return res, &RunError{Trace: desc.Path, Command: command, ExitCode: -1, Err: err}
	}

	// echo the captured output for the operator before anything else
	fmt.Fprint(out, res.Output)
	if !strings.HasSuffix(res.Output, "\n") {
		fmt.Fprintln(out)
	}

	if !res.Success() {
		h.logger.Error().
			Str("trace", desc.Path).
			Int("exit_code", res.ExitCode).
			Msg("Driver run failed")
		return res, &RunError{Trace: desc.Path, Command: command, ExitCode: res.ExitCode}
	}

	h.logger.Debug().
		Str("trace", desc.Path).
		Dur("duration", time.Since(start)).
		Msg("Driver run completed")
	return res, nil
}
