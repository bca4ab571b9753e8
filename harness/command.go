package harness

// command.go contains utilities for building the build and run command
// lines handed to the shell.

import (
	"fmt"
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// BuildOptions describes a clean rebuild of the driver for one class.
type BuildOptions struct {
	Target string // make target producing the driver binary
	Class  string // workload class baked in as TRACE_CLASS
}

// BuildArgs builds the make argument vector.
func BuildArgs(opts BuildOptions) []string {
	return []string{
		"make",
		"clean",
		opts.Target,
		"DEBUG=0",
		fmt.Sprintf("PARAMS=-D TRACE_CLASS=%s -w", opts.Class),
	}
}

// RunOptions describes a report-mode run of the driver against one trace.
type RunOptions struct {
	Binary  string // driver binary, relative to the working directory
	Trace   string // trace file to replay
	Wrapper string // optional command the run is routed through (e.g. cqrun)
}

// RunArgs builds the driver argument vector.
func RunArgs(opts RunOptions) []string {
	// the wrapper may carry its own arguments
	args := strings.Fields(opts.Wrapper)
	return append(args, opts.Binary, "-g", "-f", opts.Trace)
}

// BuildCommand joins BuildArgs into a shell command line.
func BuildCommand(opts BuildOptions) string {
	return quoteArgs(BuildArgs(opts))
}

// RunCommand joins RunArgs into a shell command line.
func RunCommand(opts RunOptions) string {
	return quoteArgs(RunArgs(opts))
}

func quoteArgs(args []string) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, shellescape.Quote(arg))
	}
	return strings.Join(parts, " ")
}
