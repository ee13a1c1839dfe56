package cli

import (
	"errors"
	"fmt"
	"strings"

	"nestmap/deep"
)

// parsePath parses a dotted path string into a deep.Path.
// Supports: "field", "nested.field", "group.1.name". Every segment is a
// string key: documents decode string-keyed, and grouped trees render
// their numeric keys as strings when written out, so "1" addresses the
// cell a reloaded group tree actually holds. Array indices are not
// supported; there is no "[]" notation.
func parsePath(path string) (deep.Path, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}

	var p deep.Path

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}

		p = append(p, part)
	}

	return p, nil
}

// parseFields parses a comma-separated field list for grouping.
func parseFields(fields string) (deep.Path, error) {
	if fields == "" {
		return nil, errors.New("empty field list")
	}

	var p deep.Path

	for _, f := range strings.Split(fields, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, fmt.Errorf("invalid field list %q: empty field", fields)
		}

		p = append(p, f)
	}

	return p, nil
}
