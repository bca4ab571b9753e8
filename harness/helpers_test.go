package harness

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeExecutor records every command and answers from a canned table keyed
// by command prefix.
type fakeExecutor struct {
	commands  []string
	dirs      []string
	responses map[string]Result
	errs      map[string]error
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{
		responses: make(map[string]Result),
		errs:      make(map[string]error),
	}
}

func (f *fakeExecutor) on(prefix string, res Result) *fakeExecutor {
	f.responses[prefix] = res
	return f
}

func (f *fakeExecutor) fail(prefix string, err error) *fakeExecutor {
	f.errs[prefix] = err
	return f
}

func (f *fakeExecutor) Execute(_ context.Context, command, dir string) (Result, error) {
	f.commands = append(f.commands, command)
	f.dirs = append(f.dirs, dir)

	// longest matching prefix wins
	var best string
	for prefix := range f.responses {
		if strings.HasPrefix(command, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	for prefix, err := range f.errs {
		if strings.HasPrefix(command, prefix) {
			return Result{ExitCode: -1}, err
		}
	}
	if best == "" {
		return Result{}, nil
	}
	return f.responses[best], nil
}

func (f *fakeExecutor) builds() []string {
	return f.filter("make ")
}

func (f *fakeExecutor) runs() []string {
	var out []string
	for _, c := range f.commands {
		if !strings.HasPrefix(c, "make ") {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeExecutor) filter(prefix string) []string {
	var out []string
	for _, c := range f.commands {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// makeTraceDir creates a directory holding empty files with the given names.
func makeTraceDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("0\n"), 0644))
	}
	return dir
}
