package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	// Example driver output
	output := `Results for libc malloc:
trace  valid  util     ops      secs  Kops
 0       yes   94%    5694  0.000210 27114
util:0.87
perfidx:1234
label:foo
ratio: 0.5 
time:12:30:01
no colon on this line
`

	prof, err := New().Parse(strings.NewReader(output))
	require.NoError(t, err)

	require.Equal(t, Int(1234), prof["perfidx"])
	require.Equal(t, Float(0.87), prof["util"])
	require.Equal(t, String("foo"), prof["label"])
	require.Equal(t, Float(0.5), prof["ratio"])
	// only the first separator splits
	require.Equal(t, String("12:30:01"), prof["time"])
	require.Equal(t, String(""), prof["Results for libc malloc"])
	require.Len(t, prof, 6)
}

func TestParser_ParseEmpty(t *testing.T) {
	prof, err := New().Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, prof)
}

func TestParser_LinesWithoutSeparatorIgnored(t *testing.T) {
	prof, err := ParseString("one\ntwo three\n\n")
	require.NoError(t, err)
	require.Empty(t, prof)
}

func TestParser_LaterKeyWins(t *testing.T) {
	prof, err := ParseString("perfidx:10\nother:1\nperfidx:30\n")
	require.NoError(t, err)

	v, ok := prof.Get("perfidx")
	require.True(t, ok)
	require.Equal(t, Int(30), v)
}

func TestParser_CustomSeparator(t *testing.T) {
	p := &Parser{Separator: "="}
	prof, err := p.Parse(strings.NewReader("perfidx=7\nperfidx:9\n"))
	require.NoError(t, err)
	require.Equal(t, Map{"perfidx": Int(7)}, prof)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Value
	}{
		{name: "integer", in: "1234", want: Int(1234)},
		{name: "negative integer", in: "-3", want: Int(-3)},
		{name: "integer with whitespace", in: "  42\t", want: Int(42)},
		{name: "float", in: "0.87", want: Float(0.87)},
		{name: "exponent", in: "1e3", want: Float(1000)},
		{name: "integer overflow falls back to float", in: "99999999999999999999", want: Float(1e20)},
		{name: "string", in: "foo", want: String("foo")},
		{name: "string trimmed", in: " yes ", want: String("yes")},
		{name: "empty", in: "", want: String("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseValue(tt.in))
		})
	}
}

func TestValue_Float64(t *testing.T) {
	f, ok := Int(100).Float64()
	require.True(t, ok)
	require.Equal(t, 100.0, f)

	f, ok = Float(2.5).Float64()
	require.True(t, ok)
	require.Equal(t, 2.5, f)

	_, ok = String("n/a").Float64()
	require.False(t, ok)
}
