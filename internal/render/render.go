// Package render pretty-prints JSON values with two-space indentation,
// preserving object member order and colorizing per value type when asked.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/mcncl/swiftline/internal/jsonval"
)

// palette maps value types to sprint functions. The plain palette is the
// identity; the colored one styles keys and scalars.
type palette struct {
	key, str, num, boolean, null func(a ...any) string
}

func plainPalette() palette {
	return palette{key: fmt.Sprint, str: fmt.Sprint, num: fmt.Sprint, boolean: fmt.Sprint, null: fmt.Sprint}
}

func coloredPalette() palette {
	return palette{
		key:     color.New(color.FgBlue, color.Bold).SprintFunc(),
		str:     color.New(color.FgGreen).SprintFunc(),
		num:     color.New(color.FgCyan).SprintFunc(),
		boolean: color.New(color.FgYellow).SprintFunc(),
		null:    color.New(color.FgMagenta).SprintFunc(),
	}
}

// JSON renders v as indented JSON text, without a trailing newline.
func JSON(v jsonval.Value, colorize bool) string {
	p := plainPalette()
	if colorize {
		p = coloredPalette()
	}

	var b strings.Builder
	writeValue(&b, v, 0, p)
	return b.String()
}

const indent = "  "

func writeValue(b *strings.Builder, v jsonval.Value, depth int, p palette) {
	switch t := v.(type) {
	case nil:
		b.WriteString(p.null("null"))
	case bool:
		if t {
			b.WriteString(p.boolean("true"))
		} else {
			b.WriteString(p.boolean("false"))
		}
	case json.Number:
		b.WriteString(p.num(t.String()))
	case string:
		b.WriteString(p.str(quote(t)))
	case jsonval.Array:
		writeArray(b, t, depth, p)
	case jsonval.Object:
		writeObject(b, t, depth, p)
	}
}

func writeArray(b *strings.Builder, arr jsonval.Array, depth int, p palette) {
	if len(arr) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteString("[\n")
	for i, v := range arr {
		b.WriteString(strings.Repeat(indent, depth+1))
		writeValue(b, v, depth+1, p)
		if i < len(arr)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(indent, depth))
	b.WriteString("]")
}

func writeObject(b *strings.Builder, obj jsonval.Object, depth int, p palette) {
	if len(obj) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	for i, m := range obj {
		b.WriteString(strings.Repeat(indent, depth+1))
		b.WriteString(p.key(quote(m.Key)))
		b.WriteString(": ")
		writeValue(b, m.Value, depth+1, p)
		if i < len(obj)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(indent, depth))
	b.WriteString("}")
}

// quote produces a JSON string literal.
func quote(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		// Marshaling a string cannot fail; fall back to the raw text.
		return `"` + s + `"`
	}
	return string(data)
}
