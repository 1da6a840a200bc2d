// Package jsonpath resolves the dot/bracket path micro-language against a
// parsed JSON value:
//
//   - Dots traverse objects: a.b.c
//   - [idx] traverses arrays: items[0]
//   - One [idx] per segment, e.g. a.b[2].c; chained indices like a[0][1]
//     within a single segment are not supported
//
// Resolution is lenient to suit scripting: any invalid step, missing key,
// or out-of-range index yields "not found" rather than an error.
package jsonpath

import (
	"strconv"
	"strings"

	"github.com/mcncl/swiftline/internal/jsonval"
)

// Sentinel is the literal printed when a path resolves to nothing. Printing
// it with exit code 0 lets shell pipelines branch on its text instead of the
// exit status.
const Sentinel = "(null)"

// Resolve walks path segment by segment and returns the addressed value.
// The second return is false when the path does not match.
func Resolve(v jsonval.Value, path string) (jsonval.Value, bool) {
	cur := v
	for _, seg := range strings.Split(path, ".") {
		// Empty segments come from a leading, trailing, or doubled dot.
		if seg == "" {
			return nil, false
		}

		name, bracket, hasIndex := strings.Cut(seg, "[")
		if !hasIndex {
			val, ok := field(cur, seg)
			if !ok {
				return nil, false
			}
			cur = val
			continue
		}

		// The `name[idx]` form: the field lookup is skipped when the
		// segment starts directly with '['.
		if name != "" {
			val, ok := field(cur, name)
			if !ok {
				return nil, false
			}
			cur = val
		}

		if !strings.HasSuffix(bracket, "]") {
			return nil, false
		}
		idx, err := strconv.Atoi(bracket[:len(bracket)-1])
		if err != nil || idx < 0 {
			return nil, false
		}

		arr, ok := cur.(jsonval.Array)
		if !ok || idx >= len(arr) {
			return nil, false
		}
		cur = arr[idx]
	}
	return cur, true
}

func field(v jsonval.Value, key string) (jsonval.Value, bool) {
	obj, ok := v.(jsonval.Object)
	if !ok {
		return nil, false
	}
	return obj.Get(key)
}
