package palette

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Setter is the part of a session palettes write to.
type Setter interface {
	Set(field string, value any)
}

// Target names the Configuration Object fields receiving each token.
type Target struct {
	Background string
	Border     string
	Text       string
	Title      string
}

// StatsTarget writes into the stats card color fields.
var StatsTarget = Target{
	Background: "bgColor",
	Border:     "borderColor",
	Text:       "textColor",
	Title:      "titleColor",
}

// LanguagesTarget writes into the language card color fields.
var LanguagesTarget = Target{
	Background: "lang_bgColor",
	Border:     "lang_borderColor",
	Text:       "lang_textColor",
	Title:      "lang_titleColor",
}

// Apply copies the selection's color tokens into target fields. Missing tokens
// leave their field untouched. A leading '#' is dropped because the rendering
// service expects bare hex. It returns the fields written, in token order.
func Apply(dst Setter, sel *theme.Selection, target Target) []string {
	tokens := Resolve(sel)
	pairs := []struct {
		token string
		field string
	}{
		{TokenBackground, target.Background},
		{TokenBorder, target.Border},
		{TokenText, target.Text},
		{TokenTitle, target.Title},
	}

	var written []string
	for _, pair := range pairs {
		if pair.field == "" {
			continue
		}
		value, ok := tokens[pair.token]
		if !ok {
			continue
		}
		dst.Set(pair.field, strings.TrimPrefix(strings.TrimSpace(value), "#"))
		written = append(written, pair.field)
	}
	return written
}

// DetectTarget picks the field family whose background field declared
// reports as present, trying the stats fields first.
func DetectTarget(declared func(field string) bool) (Target, bool) {
	for _, target := range []Target{StatsTarget, LanguagesTarget} {
		if declared(target.Background) {
			return target, true
		}
	}
	return Target{}, false
}
