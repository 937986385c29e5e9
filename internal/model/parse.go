package model

import (
	"strconv"
	"strings"
)

// ParseTags splits the comma-separated free-text tags field: entries are
// trimmed and empties discarded. Duplicates are kept (dedup is not enforced).
func ParseTags(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseValue parses the deal-value form field. Absent, non-numeric, or
// negative input defaults to 0 rather than erroring.
func ParseValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
