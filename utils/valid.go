package utils

import (
	"encoding/json"
	"strings"
)

// SplitKeywords parses a comma-joined keyword string from the authoring form
// into a trimmed, non-empty list.
func SplitKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	var keywords []string
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			keywords = append(keywords, v)
		}
	}
	return keywords
}

// KeywordsToJSON converts a comma-joined keyword string into the JSON array
// encoding the posting API expects. Input that is already a JSON array is
// passed through unchanged.
func KeywordsToJSON(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "[]"
	}
	if strings.HasPrefix(trimmed, "[") {
		return trimmed
	}

	encoded, err := json.Marshal(SplitKeywords(raw))
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

// IsDigits reports whether s is non-empty and numeric, the shape of a
// delivery verification code.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
