package metrics

import (
	"strconv"
	"strings"
)

// Kind identifies which field of a Value is populated.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	}
	return "unknown"
}

// Value is a single metric value as reported by the driver binary.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Str   string
}

func Int(v int64) Value { return Value{Kind: KindInt, Int: v} }

func Float(v float64) Value { return Value{Kind: KindFloat, Float: v} }

func String(v string) Value { return Value{Kind: KindString, Str: v} }

// ParseValue tries an integer first, then a float, and otherwise keeps the
// trimmed text.
func ParseValue(raw string) Value {
	s := strings.TrimSpace(raw)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	return String(s)
}

// Float64 returns the numeric value. ok is false for string values.
func (v Value) Float64() (f float64, ok bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	}
	return 0, false
}

func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	}
	return v.Str
}
