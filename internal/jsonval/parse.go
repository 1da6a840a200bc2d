package jsonval

import (
	"fmt"
	"strings"

	"github.com/mcncl/swiftline/internal/errors"
)

// ParseText parses raw input text into a Value. Strict JSON is always tried
// first. When relaxed is set, a strict failure falls back to the relaxed
// grammar; otherwise the strict failure is turned into a diagnostic message
// with remediation hints.
func ParseText(raw string, relaxed bool) (Value, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, errors.NewParseError("input is empty", errors.ErrEmptyInput)
	}

	v, strictErr := ParseStrict(text)
	if strictErr == nil {
		return v, nil
	}

	if !relaxed {
		return nil, errors.NewParseError(describeStrictFailure(text, strictErr), errors.ErrInvalidJSON)
	}

	v, relaxedErr := ParseRelaxed(text)
	if relaxedErr == nil {
		return v, nil
	}
	return nil, errors.NewParseError(
		fmt.Sprintf("failed to parse as JSON or relaxed JSON\n\nStrict JSON error: %v\nRelaxed error: %v", strictErr, relaxedErr),
		errors.ErrInvalidJSON,
	)
}

// describeStrictFailure builds a self-contained diagnostic for a strict
// parse failure. Lightweight pattern checks on the raw text select hints for
// the most common quoting mistakes, followed by usage examples and the
// original parser error.
func describeStrictFailure(text string, strictErr error) string {
	var b strings.Builder
	b.WriteString("Invalid JSON format")

	switch {
	case strings.Contains(text, "'{") || strings.Contains(text, "}'"):
		b.WriteString(" - avoid single quotes around the entire JSON")
	case strings.Contains(text, ": '"):
		b.WriteString(" - string values must use double quotes, not single quotes")
	case containsLetter(text) && !strings.Contains(text, `"`):
		b.WriteString(" - keys must be in double quotes")
	}

	b.WriteString("\n\nExamples of valid JSON:")
	b.WriteString("\n  shell: --text '{\"a\":{\"b\":[1,2,3]}}'")
	b.WriteString("\n  CMD:   --text \"{\\\"a\\\":{\\\"b\\\":[1,2,3]}}\"")

	b.WriteString("\n\nAlternative options:")
	b.WriteString("\n  Use --json5 for relaxed parsing: --json5 --text '{a:{b:[1,2,3]}}'")
	b.WriteString("\n  Use stdin: echo '{\"a\":{\"b\":[1,2,3]}}' | swiftline json select --path a.b[2]")
	b.WriteString("\n  Use file: swiftline json select --file data.json --path a.b[2]")

	fmt.Fprintf(&b, "\n\nOriginal error: %v", strictErr)
	return b.String()
}

func containsLetter(s string) bool {
	for _, r := range s {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return true
		}
	}
	return false
}
