package core

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "python", `"python"`},
		{"space", "my file", `"my file"`},
		{"double quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"dollar", "$HOME", `"\$HOME"`},
		{"backtick", "`id`", "\"\\`id\\`\""},
		{"html characters stay literal", "a<b>&c", `"a<b>&c"`},
		{"empty", "", `""`},
		{"tab between text", "a\tb", `"a"$'\x09'"b"`},
		{"trailing newline", "a\n", `"a"$'\x0a'`},
		{"consecutive control characters", "\r\n", `$'\x0d\x0a'`},
		{"line separator", "a\u2028", `"a"$'\xe2\x80\xa8'`},
		{"invalid utf-8 byte", "\xffz", `$'\xff'"z"`},
		{"replacement character itself is text", "\ufffd", "\"\ufffd\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Quote(tt.input))
		})
	}
}

func TestQuoteAll_QuotesEachArgument(t *testing.T) {
	assert.Equal(t, `"echo" "a b" "c"`, QuoteAll([]string{"echo", "a b", "c"}))
}

func TestQuote_RoundTripsThroughBash(t *testing.T) {
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}

	inputs := []string{
		"plain",
		"with space",
		`with "double" quotes`,
		"with 'single' quotes",
		`back\slash\`,
		"$HOME ${PATH} $(id) `id`",
		"semi; colon && pipe | glob * ? [a]",
		"~/tilde",
		"!history",
		"ünïcödé",
		"line1\nline2\ttabbed\n",
		"\u2028\u2029",
		"\xff\xfe not utf-8 \xc3",
		"\x01\x1b[0m",
		"$'\\x41' stays literal",
	}

	for _, input := range inputs {
		output, err := exec.Command("bash", "-c", "printf '%s' "+Quote(input)).Output()
		require.NoError(t, err, input)
		assert.Equal(t, input, string(output))
	}
}
