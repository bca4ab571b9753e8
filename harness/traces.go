package harness

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/dustin/go-humanize"
)

// DefaultExpectedTraces is the size of a complete trace directory.
const DefaultExpectedTraces = 10

// TraceSet is the sorted list of trace files to replay.
type TraceSet []string

// ListTraces returns every entry of dir joined with dir, sorted. It does not
// recurse.
func ListTraces(dir string) (TraceSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &DiscoveryError{Dir: dir, Err: err}
	}

	traces := make(TraceSet, 0, len(entries))
	for _, entry := range entries {
		traces = append(traces, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(traces)

	return traces, nil
}

// locateTraces resolves the configured trace file or directory. A short
// directory only produces a warning.
func (h *Harness) locateTraces(out io.Writer) (TraceSet, error) {
	if h.cfg.TraceFile != "" {
		h.logger.Debug().Str("trace", h.cfg.TraceFile).Msg("Using single trace file")
		return TraceSet{h.cfg.TraceFile}, nil
	}

	traces, err := ListTraces(h.cfg.TraceDir)
	if err != nil {
		return nil, err
	}

	if len(traces) < h.cfg.ExpectedTraces {
		fmt.Fprintf(out, "# Missing any traces? expected: %d, actual: %d\n", h.cfg.ExpectedTraces, len(traces))
		h.logger.Warn().
			Str("dir", h.cfg.TraceDir).
			Int("expected", h.cfg.ExpectedTraces).
			Int("actual", len(traces)).
			Msg("Trace directory is missing traces")
	}

	var size uint64
	for _, trace := range traces {
		if info, err := os.Stat(trace); err == nil && !info.IsDir() {
			size += uint64(info.Size())
		}
	}

	h.logger.Info().
		Str("dir", h.cfg.TraceDir).
		Int("traces", len(traces)).
		Str("size", humanize.Bytes(size)).
		Msg("Discovered traces")

	return traces, nil
}
