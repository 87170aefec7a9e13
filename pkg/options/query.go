package options

import (
	"fmt"
	"net/url"
	"strings"
)

// Omitted reports whether value counts as "not set": nil, the empty string,
// or false.
func Omitted(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case *string:
		return v == nil || *v == ""
	case *bool:
		return v == nil || !*v
	default:
		return false
	}
}

// Stringify converts a value to its query representation. Booleans become
// "true"/"false"; everything else uses its default string form.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case *bool:
		if v == nil {
			return ""
		}
		return Stringify(*v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Filter decides whether a key may appear in a query string.
type Filter interface {
	Allow(key string) bool
}

// FilterFunc adapts a function to Filter.
type FilterFunc func(key string) bool

// Allow implements Filter.
func (f FilterFunc) Allow(key string) bool {
	return f(key)
}

type keySet map[string]struct{}

func newKeySet(keys []string) keySet {
	set := make(keySet, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}

// Only accepts the listed keys.
func Only(keys ...string) Filter {
	set := newKeySet(keys)
	return FilterFunc(func(key string) bool {
		_, ok := set[key]
		return ok
	})
}

// Except rejects the listed keys.
func Except(keys ...string) Filter {
	set := newKeySet(keys)
	return FilterFunc(func(key string) bool {
		_, ok := set[key]
		return !ok
	})
}

// Query accumulates encoded key=value pairs in append order. url.Values is
// not used because its Encode sorts keys.
type Query struct {
	b strings.Builder
}

// Add appends one pair, encoding key and value.
func (q *Query) Add(key, value string) {
	if q.b.Len() > 0 {
		q.b.WriteByte('&')
	}
	q.b.WriteString(url.QueryEscape(key))
	q.b.WriteByte('=')
	q.b.WriteString(url.QueryEscape(value))
}

// Encode returns the accumulated query string without a leading '?'.
func (q *Query) Encode() string {
	return q.b.String()
}

// BuildQuery serialises values in insertion order, skipping keys rejected by
// filter and values that are Omitted. A nil filter accepts every key.
func BuildQuery(values *Values, filter Filter) string {
	var q Query
	values.Each(func(key string, value any) {
		if filter != nil && !filter.Allow(key) {
			return
		}
		if Omitted(value) {
			return
		}
		q.Add(key, Stringify(value))
	})
	return q.Encode()
}

// ParseBool maps "true"/"false" (any case) to booleans and returns every
// other input unchanged. Command-line and prompt inputs use it so toggles
// serialise the same way as declared booleans.
func ParseBool(raw string) any {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true":
		return true
	case "false":
		return false
	default:
		return raw
	}
}
