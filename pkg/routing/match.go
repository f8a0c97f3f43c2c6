package routing

import (
	"fmt"
	"strings"
)

// Params maps placeholder names from a format string to the path segments
// they matched.
type Params map[string]string

// FormatMismatchError reports a path that does not satisfy the format it
// was matched against, either because the segment counts differ or because
// a literal segment disagrees.
type FormatMismatchError struct {
	Format string
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("routing: path does not match format %q", e.Format)
}

// Match compares path against a format string made of "/"-separated literal
// and {name} placeholder segments, returning the placeholder bindings.
//
// An empty path yields empty params and no error. Empty segments on either
// side are discarded, so leading, trailing, and duplicate slashes are
// tolerated. Literal segments are compared case-sensitively by position;
// there are no optional or wildcard segments.
func Match(path, format string) (Params, error) {
	if path == "" {
		return Params{}, nil
	}

	pathSegments := splitSegments(path)
	formatSegments := splitSegments(format)
	if len(pathSegments) != len(formatSegments) {
		return nil, &FormatMismatchError{Format: format}
	}

	params := make(Params, len(formatSegments))
	for i, segment := range formatSegments {
		if name, ok := placeholderName(segment); ok {
			params[name] = pathSegments[i]
			continue
		}
		if segment != pathSegments[i] {
			return nil, &FormatMismatchError{Format: format}
		}
	}
	return params, nil
}

func splitSegments(s string) []string {
	parts := strings.Split(s, "/")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func placeholderName(segment string) (string, bool) {
	if len(segment) < 2 || !strings.HasPrefix(segment, "{") || !strings.HasSuffix(segment, "}") {
		return "", false
	}
	return segment[1 : len(segment)-1], true
}
