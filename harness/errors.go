package harness

// This file contains the error types returned by the trace loop. Every
// failure except a pattern mismatch aborts the whole batch.

import (
	"errors"
	"fmt"
)

// ErrNoTracesProcessed is returned when no trace made it through build and
// run, leaving the average undefined.
var ErrNoTracesProcessed = errors.New("no traces processed: average performance index is undefined")

// DiscoveryError reports a trace directory that could not be listed.
type DiscoveryError struct {
	Dir string
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("failed to list trace directory %s: %v", e.Dir, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// PatternMismatchError reports a trace whose path carries no workload class.
type PatternMismatchError struct {
	Trace string
}

func (e *PatternMismatchError) Error() string {
	return fmt.Sprintf("trace file %s does not match %s pattern", e.Trace, ClassPattern)
}

// BuildError reports a failed rebuild of the driver for one trace.
type BuildError struct {
	Trace    string
	Class    string
	Command  string
	ExitCode int
	Err      error
}

func (e *BuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("build for trace %s (class %s) failed: %v", e.Trace, e.Class, e.Err)
	}
	return fmt.Sprintf("build for trace %s (class %s) failed with exit code %d", e.Trace, e.Class, e.ExitCode)
}

func (e *BuildError) Unwrap() error { return e.Err }

// RunError reports a failed driver run against one trace.
type RunError struct {
	Trace    string
	Command  string
	ExitCode int
	Err      error
}

func (e *RunError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("run for trace %s failed: %v", e.Trace, e.Err)
	}
	return fmt.Sprintf("run for trace %s failed with exit code %d", e.Trace, e.ExitCode)
}

func (e *RunError) Unwrap() error { return e.Err }

// MetricError reports driver output that could not be aggregated.
type MetricError struct {
	Trace  string
	Metric string
	Err    error
}

func (e *MetricError) Error() string {
	return fmt.Sprintf("metric %s for trace %s: %v", e.Metric, e.Trace, e.Err)
}

func (e *MetricError) Unwrap() error { return e.Err }
