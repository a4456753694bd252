package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

var shellExpansionEscaper = strings.NewReplacer("$", `\$`, "`", "\\`")

// Quote renders s as one bash word. Printable text becomes a JSON string literal
// that bash reads back unchanged inside double quotes: "$" and "`" are additionally
// escaped so no expansion happens. Bytes a JSON literal would rewrite (control
// characters, U+2028, U+2029, invalid UTF-8) are appended as $'\xNN' words, which
// bash concatenates with their neighbours.
func Quote(s string) string {
	if s == "" {
		return `""`
	}

	var b strings.Builder
	literalStart := 0
	raw := []byte(nil)
	flushRaw := func() {
		if len(raw) == 0 {
			return
		}
		b.WriteString("$'")
		for _, c := range raw {
			fmt.Fprintf(&b, `\x%02x`, c)
		}
		b.WriteString("'")
		raw = raw[:0]
	}

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if isJSONLiteralRune(r, size) {
			flushRaw()
			i += size
			continue
		}
		if literalStart < i {
			b.WriteString(jsonLiteral(s[literalStart:i]))
		}
		raw = append(raw, s[i:i+size]...)
		i += size
		literalStart = i
	}
	flushRaw()
	if literalStart < len(s) {
		b.WriteString(jsonLiteral(s[literalStart:]))
	}
	return b.String()
}

// QuoteAll quotes every argument separately and joins them into one command line.
func QuoteAll(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = Quote(arg)
	}
	return strings.Join(quoted, " ")
}

func isJSONLiteralRune(r rune, size int) bool {
	if r == utf8.RuneError && size == 1 {
		return false
	}
	return r >= 0x20 && r != '\u2028' && r != '\u2029'
}

func jsonLiteral(s string) string {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = encoder.Encode(s)
	return shellExpansionEscaper.Replace(strings.TrimSuffix(buf.String(), "\n"))
}
