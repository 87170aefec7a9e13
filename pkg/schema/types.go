package schema

import (
	"github.com/goliatone/go-statsstudio/pkg/options"
)

// FallbackTemplate is selected when the registry declares no templates.
const FallbackTemplate = "stats"

// Template is a named, prefix-bound bundle of display options.
type Template struct {
	Name    string   `json:"name"`
	Prefix  string   `json:"prefix"`
	Options []Option `json:"options,omitempty"`
}

// Option declares a Configuration Object field and the shape of its default.
// Value holds the decoded descriptor value: a primitive, a list of
// primitives, a list of named objects, or a single named object.
type Option struct {
	Name  string `json:"name"`
	Value any    `json:"value,omitempty"`
}

// OptionNames lists the template's option names in declaration order.
func (t Template) OptionNames() []string {
	out := make([]string, 0, len(t.Options))
	for _, opt := range t.Options {
		out = append(out, opt.Name)
	}
	return out
}

// Option returns the named option descriptor.
func (t Template) Option(name string) (Option, bool) {
	for _, opt := range t.Options {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// Defaults resolves the template's own option defaults in declaration order.
// Options whose shape has no default are left out.
func (t Template) Defaults() *options.Values {
	out := options.New()
	for _, opt := range t.Options {
		if value, ok := ResolveDefault(opt.Value); ok {
			out.Set(opt.Name, value)
		}
	}
	return out
}

// OptionKind classifies an option for editors and API descriptions.
type OptionKind string

const (
	OptionKindBool   OptionKind = "bool"
	OptionKindChoice OptionKind = "choice"
	OptionKindText   OptionKind = "text"
)

// Kind derives the option kind from its declared value.
func (o Option) Kind() OptionKind {
	switch v := o.Value.(type) {
	case bool:
		return OptionKindBool
	case []any:
		if len(v) > 0 {
			return OptionKindChoice
		}
	case map[string]any:
		if _, ok := v["name"]; ok {
			return OptionKindChoice
		}
	}
	return OptionKindText
}

// Choices lists the selectable values for choice options: primitive list
// entries verbatim, object entries by name.
func (o Option) Choices() []string {
	switch v := o.Value.(type) {
	case []any:
		var out []string
		for _, item := range v {
			if choice, ok := choiceName(item); ok {
				out = append(out, choice)
			}
		}
		return out
	case map[string]any:
		if choice, ok := choiceName(v); ok {
			return []string{choice}
		}
	}
	return nil
}

// Default resolves the option's default value.
func (o Option) Default() (any, bool) {
	return ResolveDefault(o.Value)
}

func choiceName(item any) (string, bool) {
	switch v := item.(type) {
	case map[string]any:
		name, ok := v["name"]
		if !ok || name == nil {
			return "", false
		}
		return options.Stringify(name), true
	case nil:
		return "", false
	case []any:
		return "", false
	default:
		return options.Stringify(v), true
	}
}
