package metrics

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single line of driver output.
const maxLineSize = 1024 * 1024

// Map holds the metrics of one driver run, keyed by metric name.
type Map map[string]Value

// Get returns the value for key and whether it was present.
func (m Map) Get(key string) (Value, bool) {
	v, ok := m[key]
	return v, ok
}

// Parser parses the key:value report printed by the driver binary
type Parser struct {
	// Separator splits key from value, only its first occurrence counts
	Separator string
}

// New creates a new parser instance
func New() *Parser {
	return &Parser{Separator: ":"}
}

// Parse reads driver output line by line and returns the collected metrics.
// Lines without a separator are ignored. A key seen again overwrites the
// earlier value.
func (p *Parser) Parse(reader io.Reader) (Map, error) {
	result := make(Map)

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), p.Separator)
		if !found {
			continue
		}
		result[key] = ParseValue(value)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading driver output: %w", err)
	}

	return result, nil
}

// ParseString is a convenience wrapper around Parse for captured output.
func ParseString(output string) (Map, error) {
	return New().Parse(strings.NewReader(output))
}
