// Package endpoint serialises the Configuration Object for rendering
// endpoints that accept a fixed set of parameters.
package endpoint

import (
	"strings"

	"github.com/goliatone/go-statsstudio/pkg/options"
)

// Presence controls when a rule emits its parameter.
type Presence int

const (
	// PresenceSet emits the parameter only when the value is not omitted.
	PresenceSet Presence = iota
	// PresenceDefined emits the parameter whenever the field holds a non-nil
	// value, so false serialises as "false".
	PresenceDefined
	// PresenceAlways emits the parameter even when the field is missing.
	PresenceAlways
)

// Rule maps one Configuration Object field onto a query parameter.
type Rule struct {
	// Field is the Configuration Object key.
	Field string
	// Param is the emitted query key. Empty means Field.
	Param string
	// Presence selects the emission rule.
	Presence Presence
	// Default suppresses the parameter when the stringified value equals it.
	Default string
}

// ParamName returns the emitted query key.
func (r Rule) ParamName() string {
	if r.Param != "" {
		return r.Param
	}
	return r.Field
}

func (r Rule) emit(values *options.Values) (string, bool) {
	value, present := values.Get(r.Field)
	switch r.Presence {
	case PresenceAlways:
		if !present || value == nil {
			return "", true
		}
	case PresenceDefined:
		if !present || value == nil {
			return "", false
		}
	default:
		if !present || options.Omitted(value) {
			return "", false
		}
	}
	out := options.Stringify(value)
	if r.Default != "" && out == r.Default {
		return "", false
	}
	return out, true
}

// Endpoint describes an allow-list serialiser for one rendering path.
type Endpoint struct {
	Name string
	Path string
	// Rules is the allow-list. Fields without a rule are never emitted.
	Rules []Rule
	// FollowValueOrder emits parameters in Configuration Object order instead
	// of rule order.
	FollowValueOrder bool
}

// Fields returns the allow-listed Configuration Object keys in rule order.
func (e Endpoint) Fields() []string {
	out := make([]string, 0, len(e.Rules))
	for _, rule := range e.Rules {
		out = append(out, rule.Field)
	}
	return out
}

// Query serialises values through the endpoint's allow-list.
func (e Endpoint) Query(values *options.Values) string {
	var q options.Query
	if e.FollowValueOrder {
		rules := make(map[string]Rule, len(e.Rules))
		for _, rule := range e.Rules {
			rules[rule.Field] = rule
		}
		for _, key := range values.Keys() {
			rule, ok := rules[key]
			if !ok {
				continue
			}
			if value, ok := rule.emit(values); ok {
				q.Add(rule.ParamName(), value)
			}
		}
		return q.Encode()
	}

	for _, rule := range e.Rules {
		if value, ok := rule.emit(values); ok {
			q.Add(rule.ParamName(), value)
		}
	}
	return q.Encode()
}

// URL builds the fully qualified endpoint URL for values.
func (e Endpoint) URL(base string, values *options.Values) string {
	return BuildURL(base, e.Path, e.Query(values))
}

// BuildURL joins base and path with a single slash and appends query after
// '?'. An empty query yields no '?'.
func BuildURL(base, path, query string) string {
	out := JoinPath(base, path)
	if query == "" {
		return out
	}
	return out + "?" + query
}

// JoinPath joins base and path with exactly one slash between them.
func JoinPath(base, path string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	switch {
	case path == "":
		return base
	case base == "":
		return "/" + path
	default:
		return base + "/" + path
	}
}

// Set is an ordered collection of endpoints addressed by name.
type Set []Endpoint

// Lookup returns the endpoint named name.
func (s Set) Lookup(name string) (Endpoint, bool) {
	for _, ep := range s {
		if ep.Name == name {
			return ep, true
		}
	}
	return Endpoint{}, false
}

// Names lists the endpoint names in order.
func (s Set) Names() []string {
	out := make([]string, 0, len(s))
	for _, ep := range s {
		out = append(out, ep.Name)
	}
	return out
}
