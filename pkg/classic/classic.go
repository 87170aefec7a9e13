// Package classic describes the fixed-schema Stats Studio variant: a single
// built-in "stats" template with a hardcoded option list and three
// allow-list endpoints (stats, languages, graph).
package classic

import (
	"github.com/goliatone/go-statsstudio/pkg/endpoint"
	"github.com/goliatone/go-statsstudio/pkg/options"
	"github.com/goliatone/go-statsstudio/pkg/schema"
)

// BaseURL is the public rendering service.
const BaseURL = "https://stats.pphat.top"

const (
	EndpointStats     = "stats"
	EndpointLanguages = "languages"
	EndpointGraph     = "graph"
)

// Defaults returns the ordered seed values of the fixed-schema variant.
func Defaults() *options.Values {
	return options.New(
		options.P("username", ""),
		options.P("hide_title", false),
		options.P("hide_rank", false),
		options.P("custom_title", ""),
		options.P("avatar_mode", "radar"),
		options.P("data_border_style", "solid"),
		options.P("data_border_frame_position", "in"),
		options.P("theme", ""),
		options.P("bgColor", ""),
		options.P("borderColor", ""),
		options.P("textColor", ""),
		options.P("titleColor", ""),
		// graph
		options.P("graph_theme", "aurora"),
		options.P("year", ""),
		options.P("animate", "glow"),
		options.P("size", "default"),
		options.P("show_title", true),
		options.P("show_total_contribution", true),
		options.P("show_background", true),
		// languages
		options.P("lang_theme", ""),
		options.P("show_info", true),
		options.P("type", "card"),
		options.P("lang_bgColor", ""),
		options.P("lang_borderColor", ""),
		options.P("lang_textColor", ""),
		options.P("lang_titleColor", ""),
	)
}

// Stats serialises the stats card fields in Configuration Object order.
func Stats() endpoint.Endpoint {
	fields := []string{
		"username", "hide_title", "hide_rank", "custom_title", "avatar_mode",
		"data_border_style", "data_border_frame_position", "theme",
		"bgColor", "borderColor", "textColor", "titleColor",
	}
	rules := make([]endpoint.Rule, 0, len(fields))
	for _, field := range fields {
		rules = append(rules, endpoint.Rule{Field: field})
	}
	return endpoint.Endpoint{
		Name:             EndpointStats,
		Path:             "stats",
		Rules:            rules,
		FollowValueOrder: true,
	}
}

// Languages serialises the language breakdown fields. lang_* fields are
// emitted under the service's unprefixed names.
func Languages() endpoint.Endpoint {
	return endpoint.Endpoint{
		Name: EndpointLanguages,
		Path: "languages",
		Rules: []endpoint.Rule{
			{Field: "username", Presence: endpoint.PresenceAlways},
			{Field: "lang_theme", Param: "theme"},
			{Field: "show_info", Presence: endpoint.PresenceDefined},
			{Field: "type", Default: "card"},
			{Field: "lang_bgColor", Param: "bgColor"},
			{Field: "lang_borderColor", Param: "borderColor"},
			{Field: "lang_textColor", Param: "textColor"},
			{Field: "lang_titleColor", Param: "titleColor"},
		},
	}
}

// Graph serialises the contribution graph fields. animate and size are
// suppressed when they match the service defaults.
func Graph() endpoint.Endpoint {
	return endpoint.Endpoint{
		Name: EndpointGraph,
		Path: "graph",
		Rules: []endpoint.Rule{
			{Field: "username", Presence: endpoint.PresenceAlways},
			{Field: "graph_theme", Param: "theme"},
			{Field: "year"},
			{Field: "animate", Default: "glow"},
			{Field: "size", Default: "default"},
			{Field: "show_title", Presence: endpoint.PresenceDefined},
			{Field: "show_total_contribution", Presence: endpoint.PresenceDefined},
			{Field: "show_background", Presence: endpoint.PresenceDefined},
		},
	}
}

// Endpoints returns the three classic endpoints.
func Endpoints() endpoint.Set {
	return endpoint.Set{Stats(), Languages(), Graph()}
}

// Template expresses the fixed option list as a schema template so the
// classic variant runs through the same registry machinery. Free-text fields
// carry no default.
func Template() schema.Template {
	return schema.Template{
		Name:   EndpointStats,
		Prefix: "stats",
		Options: []schema.Option{
			{Name: "hide_title", Value: false},
			{Name: "hide_rank", Value: false},
			{Name: "custom_title", Value: ""},
			{Name: "avatar_mode", Value: []any{"radar", "none"}},
			{Name: "data_border_style", Value: []any{"solid", "frame"}},
			{Name: "data_border_frame_position", Value: []any{"in", "out"}},
			{Name: "theme", Value: ""},
			{Name: "bgColor", Value: ""},
			{Name: "borderColor", Value: ""},
			{Name: "textColor", Value: ""},
			{Name: "titleColor", Value: ""},
			{Name: "graph_theme", Value: []any{"aurora"}},
			{Name: "year", Value: ""},
			{Name: "animate", Value: []any{"glow", "fast", "none"}},
			{Name: "size", Value: []any{"default", "small", "large"}},
			{Name: "show_title", Value: true},
			{Name: "show_total_contribution", Value: true},
			{Name: "show_background", Value: true},
			{Name: "lang_theme", Value: ""},
			{Name: "show_info", Value: true},
			{Name: "type", Value: []any{"card", "pie"}},
			{Name: "lang_bgColor", Value: ""},
			{Name: "lang_borderColor", Value: ""},
			{Name: "lang_textColor", Value: ""},
			{Name: "lang_titleColor", Value: ""},
		},
	}
}

// Registry returns a registry holding only Template.
func Registry() *schema.Registry {
	return schema.NewRegistry(BaseURL, Template())
}
