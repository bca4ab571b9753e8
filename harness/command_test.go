package harness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCommand(t *testing.T) {
	require.Equal(t,
		[]string{"make", "clean", "mdriver", "DEBUG=0", "PARAMS=-D TRACE_CLASS=3 -w"},
		BuildArgs(BuildOptions{Target: "mdriver", Class: "3"}),
	)
	require.Equal(t,
		"make clean mdriver DEBUG=0 'PARAMS=-D TRACE_CLASS=3 -w'",
		BuildCommand(BuildOptions{Target: "mdriver", Class: "3"}),
	)
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name string
		opts RunOptions
		want string
	}{
		{
			name: "plain",
			opts: RunOptions{Binary: "./mdriver", Trace: "traces/trace_c1_v0.rep"},
			want: "./mdriver -g -f traces/trace_c1_v0.rep",
		},
		{
			name: "wrapped",
			opts: RunOptions{Binary: "./mdriver", Trace: "traces/trace_c1_v0.rep", Wrapper: "cqrun"},
			want: "cqrun ./mdriver -g -f traces/trace_c1_v0.rep",
		},
		{
			name: "wrapper with arguments",
			opts: RunOptions{Binary: "./mdriver", Trace: "t", Wrapper: "cqrun --queue fast"},
			want: "cqrun --queue fast ./mdriver -g -f t",
		},
		{
			name: "trace with spaces is quoted",
			opts: RunOptions{Binary: "./mdriver", Trace: "my traces/trace_c1_v0.rep"},
			want: "./mdriver -g -f 'my traces/trace_c1_v0.rep'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RunCommand(tt.opts))
		})
	}
}
