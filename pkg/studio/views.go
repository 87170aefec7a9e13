package studio

import (
	"strings"

	"github.com/goliatone/go-statsstudio/pkg/endpoint"
	"github.com/goliatone/go-statsstudio/pkg/options"
)

const viewAll = "query:*"

// QueryString serialises the whole Configuration Object through filter. A nil
// filter accepts every key and is memoized.
func (s *Session) QueryString(filter options.Filter) string {
	if filter != nil {
		return options.BuildQuery(s.values, filter)
	}
	return s.view(viewAll, func() string {
		return options.BuildQuery(s.values, nil)
	})
}

// TemplateQueryString serialises username plus the selected template's
// declared fields in Configuration Object order.
func (s *Session) TemplateQueryString() string {
	return s.view("template:"+s.selected, func() string {
		return options.BuildQuery(s.values, s.templateFilter())
	})
}

func (s *Session) templateFilter() options.Filter {
	allowed := map[string]struct{}{UsernameField: {}}
	tpl, ok := s.Template()
	if !ok {
		return options.Only(UsernameField)
	}
	for _, name := range tpl.OptionNames() {
		allowed[name] = struct{}{}
	}
	defaults := tpl.Defaults()
	return options.FilterFunc(func(key string) bool {
		if _, ok := allowed[key]; !ok {
			return false
		}
		if !s.suppressDefaults || key == UsernameField {
			return true
		}
		declared, ok := defaults.Get(key)
		if !ok {
			return true
		}
		current, _ := s.values.Get(key)
		return options.Stringify(current) != options.Stringify(declared)
	})
}

// URL returns <base>/<prefix>?<query> for the selected template. Without a
// username it returns the bare base URL, meaning nothing to render yet.
func (s *Session) URL() string {
	return s.view("url:"+s.selected, func() string {
		if strings.TrimSpace(s.Username()) == "" {
			return s.baseURL
		}
		prefix := s.selected
		if tpl, ok := s.Template(); ok && tpl.Prefix != "" {
			prefix = tpl.Prefix
		}
		return endpoint.BuildURL(s.baseURL, prefix, s.TemplateQueryString())
	})
}

// Endpoints lists the registered allow-list endpoints.
func (s *Session) Endpoints() endpoint.Set {
	return append(endpoint.Set(nil), s.endpoints...)
}

// EndpointQuery serialises the Configuration Object for the named endpoint.
func (s *Session) EndpointQuery(name string) (string, bool) {
	ep, ok := s.endpoints.Lookup(name)
	if !ok {
		return "", false
	}
	return s.view("endpoint-query:"+name, func() string {
		return ep.Query(s.values)
	}), true
}

// EndpointURL returns the fully qualified URL for the named endpoint.
func (s *Session) EndpointURL(name string) (string, bool) {
	ep, ok := s.endpoints.Lookup(name)
	if !ok {
		return "", false
	}
	query, _ := s.EndpointQuery(name)
	return s.view("endpoint-url:"+name, func() string {
		return endpoint.BuildURL(s.baseURL, ep.Path, query)
	}), true
}

// NamedURL pairs an endpoint name with its URL.
type NamedURL struct {
	Name string
	URL  string
}

// EndpointURLs returns every registered endpoint URL in registration order.
func (s *Session) EndpointURLs() []NamedURL {
	out := make([]NamedURL, 0, len(s.endpoints))
	for _, ep := range s.endpoints {
		u, _ := s.EndpointURL(ep.Name)
		out = append(out, NamedURL{Name: ep.Name, URL: u})
	}
	return out
}
