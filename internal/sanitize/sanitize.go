// Package sanitize cleans free-text values typed by users before they enter
// the Configuration Object.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Text strips markup from raw and trims surrounding whitespace. Entities that
// the policy escapes are decoded again so "Tom & Jerry" survives unchanged.
func Text(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := textSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// Value sanitizes string values and returns every other value unchanged.
func Value(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return Text(s)
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
