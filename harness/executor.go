package harness

// This file contains the process executor used to shell out to the build
// tool and the driver binary.

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Result is the outcome of one command invocation.
type Result struct {
	ExitCode int
	Output   string
}

// Success reports whether the command exited with status zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Executor runs a shell command line in a working directory and waits for
// it to exit. A non-zero exit is reported through Result, the error is
// reserved for commands that could not be run at all.
type Executor interface {
	Execute(ctx context.Context, command, dir string) (Result, error)
}

// ShellExecutor runs commands through sh -c, capturing stdout.
type ShellExecutor struct {
	// Shell defaults to /bin/sh
	Shell string
	// Stderr receives the child's stderr, defaults to os.Stderr
	Stderr io.Writer
}

// NewShellExecutor returns an executor using /bin/sh.
func NewShellExecutor() *ShellExecutor {
	return &ShellExecutor{Shell: "/bin/sh", Stderr: os.Stderr}
}

func (e *ShellExecutor) Execute(ctx context.Context, command, dir string) (Result, error) {
	shell := e.Shell
	if shell == "" {
		shell = "/bin/sh"
	}
	stderr := e.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.Dir = dir

	var stdoutBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return Result{ExitCode: exitErr.ExitCode(), Output: stdoutBuf.String()}, nil
		}
		return Result{ExitCode: -1, Output: stdoutBuf.String()}, fmt.Errorf("failed to execute %q: %w", command, err)
	}

	return Result{Output: stdoutBuf.String()}, nil
}
