package harness

// This file contains the rebuild of the driver binary for a trace's
// workload class.

import (
	"context"
	"time"
)

func (h *Harness) buildDriver(ctx context.Context, desc TraceDescriptor) error {
	command := BuildCommand(BuildOptions{
		Target: h.cfg.MakeTarget,
		Class:  desc.Class,
	})

	h.logger.Info().
		Str("trace", desc.Path).
		Str("class", desc.Class).
		Msg("Building driver")
	h.logger.Debug().
		Str("command", command).
		Str("dir", h.cfg.WorkDir).
		Msg("Executing build")

	start := time.Now()
	// stdout of the build is discarded
	res, err := h.exec.Execute(ctx, command, h.cfg.WorkDir)
	if err != nil {
		return &BuildError{Trace: desc.Path, Class: desc.Class, Command: command, ExitCode: -1, Err: err}
	}
	if !res.Success() {
		h.logger.Error().
			Str("trace", desc.Path).
			Int("exit_code", res.ExitCode).
			Msg("Build failed")
		return &BuildError{Trace: desc.Path, Class: desc.Class, Command: command, ExitCode: res.ExitCode}
	}

	h.logger.Debug().
		Str("trace", desc.Path).
		Dur("duration", time.Since(start)).
		Msg("Driver built successfully")
	return nil
}
