// Package jsonx extracts JSON fragments from untrusted model output.
// Language models routinely wrap JSON in prose, markdown fences or apologies;
// these helpers locate the payload instead of assuming the whole response
// decodes cleanly.
package jsonx

import "strings"

// ExtractObject returns the first balanced-brace JSON object in s. The object
// runs from the first '{' to the position where brace depth returns to zero.
// Returns false when no '{' exists or the braces never balance.
func ExtractObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// ExtractArray returns the span from the first '[' to the first ']' after it.
// Sufficient for the flat string arrays the damage detector emits; nested
// arrays are not a supported response shape.
func ExtractArray(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", false
	}
	end := strings.IndexByte(s[start:], ']')
	if end < 0 {
		return "", false
	}
	return s[start : start+end+1], true
}
