package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/perfgo/tracebench/harness"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const AppName = "tracebench"

type App struct {
	logger   zerolog.Logger
	cli      *cli.App
	out      io.Writer
	executor harness.Executor
}

func New() *App {

	// Set default log level to info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger :=
		log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339Nano,
		})

	app := &App{
		logger: logger,
		out:    os.Stdout,
	}
	app.cli = &cli.App{
		Name:  AppName,
		Usage: "Rebuild the allocator driver per trace class, replay every trace and report the average performance index",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose (debug) logging",
				EnvVars: []string{"TRACEBENCH_VERBOSE"},
			},
			&cli.StringFlag{
				Name:    "trace-dir",
				Usage:   "Directory holding the trace files (used when --trace-file is not set)",
				Value:   "traces",
				EnvVars: []string{"TRACEBENCH_TRACE_DIR"},
			},
			&cli.StringFlag{
				Name:    "trace-file",
				Usage:   "Replay only this trace file",
				EnvVars: []string{"TRACEBENCH_TRACE_FILE"},
			},
			&cli.BoolFlag{
				Name:    "cqrun",
				Usage:   "Route driver runs through the cqrun wrapper",
				EnvVars: []string{"TRACEBENCH_CQRUN"},
			},
			&cli.StringFlag{
				Name:    "wrapper",
				Usage:   "Wrapper command prefixed to driver runs when --cqrun is set",
				Value:   "cqrun",
				EnvVars: []string{"TRACEBENCH_WRAPPER"},
			},
			&cli.StringFlag{
				Name:    "workdir",
				Usage:   "Directory the build and the driver run in",
				Value:   ".",
				EnvVars: []string{"TRACEBENCH_WORKDIR"},
			},
			&cli.StringFlag{
				Name:    "make-target",
				Usage:   "Make target producing the driver binary",
				Value:   "mdriver",
				EnvVars: []string{"TRACEBENCH_MAKE_TARGET"},
			},
			&cli.StringFlag{
				Name:    "binary",
				Usage:   "Driver binary, relative to --workdir",
				Value:   "./mdriver",
				EnvVars: []string{"TRACEBENCH_BINARY"},
			},
			&cli.IntFlag{
				Name:    "expected-traces",
				Usage:   "Warn when the trace directory holds fewer files than this",
				Value:   harness.DefaultExpectedTraces,
				EnvVars: []string{"TRACEBENCH_EXPECTED_TRACES"},
			},
		},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool("verbose") {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			return nil
		},
		Action: app.bench,
	}
	return app
}

func (a *App) Run(args []string) error {
	return a.cli.Run(args)
}

// SetVersion sets the version information for the CLI application
func (a *App) SetVersion(version, commit, date string) {
	a.cli.Version = version
	if commit != "none" && commit != "" {
		if len(commit) > 8 {
			commit = commit[:8]
		}
		a.cli.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	}
}
