package harness

import "regexp"

// ClassPattern is the naming scheme every trace file has to follow.
const ClassPattern = "trace_c{C}_v{V}"

var classRegexp = regexp.MustCompile(`trace_c(\d)_v(\d)`)

// TraceDescriptor is a trace file together with its workload class.
type TraceDescriptor struct {
	Path  string
	Class string
}

// ExtractClass returns the single digit class encoded in the trace path.
func ExtractClass(trace string) (string, error) {
	m := classRegexp.FindStringSubmatch(trace)
	if m == nil {
		return "", &PatternMismatchError{Trace: trace}
	}
	return m[1], nil
}
