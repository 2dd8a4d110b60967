package utils

import (
	"strings"
)

// NormalizeChoice lowercases and trims input and reports whether the result is
// one of allowed. Aliases map alternate spellings onto allowed values.
func NormalizeChoice(input string, allowed []string, aliases map[string]string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	if alias, ok := aliases[s]; ok {
		s = alias
	}
	for _, a := range allowed {
		if s == a {
			return s, true
		}
	}
	return s, false
}

// NormalizeTags trims each tag, drops empty ones and removes later duplicates
// that differ only in case. The first spelling of a tag is kept.
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, trimmed)
	}
	return result
}
