package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TemplatesMenuName identifies the sidebar menu entry carrying templates.
const TemplatesMenuName = "templates"

var (
	// ErrTemplatesMenuMissing reports a descriptor without a "templates" menu
	// entry. The accompanying registry is empty but usable.
	ErrTemplatesMenuMissing = errors.New("schema: templates menu entry not found")
	// ErrEmptyDocument reports an empty descriptor payload.
	ErrEmptyDocument = errors.New("schema: descriptor document is empty")
)

// Registry exposes the declared templates read-only.
type Registry struct {
	statsURL  string
	templates []Template
}

// NewRegistry builds a registry from templates. Templates without a name and
// repeated template names are dropped; options are deduplicated by name.
func NewRegistry(statsURL string, templates ...Template) *Registry {
	r := &Registry{statsURL: strings.TrimSpace(statsURL)}
	seen := make(map[string]struct{}, len(templates))
	for _, tpl := range templates {
		name := strings.TrimSpace(tpl.Name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		tpl.Name = name
		tpl.Options = uniqueOptions(tpl.Options)
		r.templates = append(r.templates, tpl)
	}
	return r
}

// StatsURL returns the rendering service base URL declared by the document.
func (r *Registry) StatsURL() string {
	if r == nil {
		return ""
	}
	return r.statsURL
}

// Templates returns a copy of the templates in declaration order.
func (r *Registry) Templates() []Template {
	if r == nil {
		return nil
	}
	out := make([]Template, len(r.templates))
	for i, tpl := range r.templates {
		tpl.Options = append([]Option(nil), tpl.Options...)
		out[i] = tpl
	}
	return out
}

// Template returns the named template.
func (r *Registry) Template(name string) (Template, bool) {
	if r == nil {
		return Template{}, false
	}
	for _, tpl := range r.templates {
		if tpl.Name == name {
			tpl.Options = append([]Option(nil), tpl.Options...)
			return tpl, true
		}
	}
	return Template{}, false
}

// Names lists template names in declaration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.templates))
	for _, tpl := range r.templates {
		out = append(out, tpl.Name)
	}
	return out
}

// First returns the name of the first template, or FallbackTemplate when the
// registry is empty.
func (r *Registry) First() string {
	if r.Empty() {
		return FallbackTemplate
	}
	return r.templates[0].Name
}

// Empty reports whether the registry declares no templates.
func (r *Registry) Empty() bool {
	return r == nil || len(r.templates) == 0
}

// Parse decodes a descriptor document (JSON, or YAML as a fallback). On
// failure it still returns an empty registry so callers can degrade to the
// fallback template.
func Parse(data []byte) (*Registry, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return NewRegistry(""), ErrEmptyDocument
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return NewRegistry(""), fmt.Errorf("schema: parse descriptor: invalid JSON or YAML: %w", err)
		}
	}

	sidebar := object(object(doc)["sidebar"])
	statsURL, _ := sidebar["statsUrl"].(string)

	menu, found := findMenu(list(sidebar["menu"]), TemplatesMenuName)
	if !found {
		return NewRegistry(statsURL), ErrTemplatesMenuMissing
	}

	var templates []Template
	for _, raw := range list(menu["items"]) {
		if tpl, ok := decodeTemplate(raw); ok {
			templates = append(templates, tpl)
		}
	}
	return NewRegistry(statsURL, templates...), nil
}

func findMenu(entries []any, name string) (map[string]any, bool) {
	for _, entry := range entries {
		menu := object(entry)
		if menu == nil {
			continue
		}
		if menuName, _ := menu["name"].(string); menuName == name {
			return menu, true
		}
	}
	return nil, false
}

func decodeTemplate(raw any) (Template, bool) {
	item := object(raw)
	name, _ := item["name"].(string)
	if strings.TrimSpace(name) == "" {
		return Template{}, false
	}
	prefix, _ := item["prefix"].(string)
	tpl := Template{Name: name, Prefix: strings.TrimSpace(prefix)}
	for _, rawOpt := range list(item["options"]) {
		opt := object(rawOpt)
		optName, _ := opt["name"].(string)
		if strings.TrimSpace(optName) == "" {
			continue
		}
		tpl.Options = append(tpl.Options, Option{Name: optName, Value: opt["value"]})
	}
	return tpl, true
}

func uniqueOptions(in []Option) []Option {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]Option, 0, len(in))
	for _, opt := range in {
		if _, dup := seen[opt.Name]; dup {
			continue
		}
		seen[opt.Name] = struct{}{}
		out = append(out, opt)
	}
	return out
}

func object(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func list(v any) []any {
	l, _ := v.([]any)
	return l
}
