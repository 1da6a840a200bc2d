// Package input resolves the JSON text for the json subcommands from one of
// three sources: an explicit file path, an inline text argument, or stdin.
package input

import (
	"fmt"
	"io"
	"os"

	"github.com/mcncl/swiftline/internal/errors"
)

// Resolve returns the raw input text following the fixed priority
// file > text > stdin. The first available source is used exclusively;
// a read failure does not fall through to the next source. A nil file or
// text pointer means the flag was not supplied at all, so an explicitly
// empty --text still counts as the chosen source.
func Resolve(file, text *string, stdin io.Reader) (string, error) {
	if file != nil {
		data, err := os.ReadFile(*file)
		if err != nil {
			return "", errors.NewIOError(fmt.Sprintf("failed to read file '%s'", *file), err)
		}
		return string(data), nil
	}

	if text != nil {
		// Verbatim: trimming happens at parse time, not here.
		return *text, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.NewIOError("failed to read from stdin", err)
	}
	return string(data), nil
}
