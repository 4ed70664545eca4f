package service

import "strings"

// Model output often wraps JSON in markdown code fences or surrounds it
// with prose. These helpers recover the embedded document before decoding.

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

// extractJSONArray returns the outermost [...] span of s, or "" when no
// array is present.
func extractJSONArray(s string) string {
	s = stripCodeFences(s)
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// extractJSONObject returns the outermost {...} span of s, or "" when no
// object is present.
func extractJSONObject(s string) string {
	s = stripCodeFences(s)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
