package catalog

import (
	"path/filepath"
	"strings"

	"cfdsmoke/internal/domain"
)

// Filter narrows a case list by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps cases whose script name or full path matches pattern.
// Supports patterns like "cone20*" or "*/sod-shock-tube/*"; a pattern without
// wildcards is a substring match. Order is preserved.
func (f *Filter) FilterByName(cases []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return cases
	}

	var filtered []domain.TestCase
	for _, tc := range cases {
		if matches(pattern, tc.File()) || matches(pattern, tc.Path) {
			filtered = append(filtered, tc)
		}
	}
	return filtered
}

func matches(pattern, name string) bool {
	if ok, err := filepath.Match(pattern, name); err == nil && ok {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// filepath.Match does not let * cross a separator, so fall back to
	// matching the non-wildcard parts in order.
	if strings.Contains(pattern, "?") {
		return false
	}
	rest := name
	found := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
		found = true
	}
	return found
}
