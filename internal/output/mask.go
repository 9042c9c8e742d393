// Package output renders profiles and settings for the terminal.
package output

import "strings"

// NotSet is shown for empty secrets and bare placeholder prefixes.
const NotSet = "(not set)"

// placeholderPrefixes are template token stubs that carry no secret.
var placeholderPrefixes = []string{"sk-", "ms-", "sk-kimi-"}

var sensitiveMarkers = []string{"token", "key", "secret", "password"}

// MaskSensitiveValue hides a secret for display. Values of up to 8 characters
// are fully starred; longer ones keep their first and last 4 characters.
func MaskSensitiveValue(value string) string {
	if value == "" {
		return NotSet
	}
	for _, prefix := range placeholderPrefixes {
		if value == prefix {
			return NotSet
		}
	}

	runes := []rune(value)
	if len(runes) <= 8 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:4]) + strings.Repeat("*", len(runes)-8) + string(runes[len(runes)-4:])
}

// IsSensitiveKey reports whether a variable name looks like it holds a credential.
func IsSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, marker := range sensitiveMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// DisplayValue masks value when key is sensitive.
func DisplayValue(key, value string) string {
	if IsSensitiveKey(key) {
		return MaskSensitiveValue(value)
	}
	return value
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
