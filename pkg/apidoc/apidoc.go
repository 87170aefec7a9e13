// Package apidoc describes the rendering endpoints implied by a template
// registry as an OpenAPI 3 document: one GET operation per template with a
// query parameter per declared option.
package apidoc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-statsstudio/pkg/schema"
)

const (
	defaultTitle   = "Stats rendering service"
	defaultVersion = "1.0.0"
)

// Info describes the generated document.
type Info struct {
	Title   string
	Version string
	// ServerURL overrides the registry's stats URL.
	ServerURL string
}

// Build produces and validates an OpenAPI document for registry.
func Build(ctx context.Context, registry *schema.Registry, info Info) (*openapi3.T, error) {
	if registry.Empty() {
		return nil, errors.New("apidoc: registry declares no templates")
	}
	if info.Title == "" {
		info.Title = defaultTitle
	}
	if info.Version == "" {
		info.Version = defaultVersion
	}
	server := info.ServerURL
	if server == "" {
		server = registry.StatsURL()
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   info.Title,
			Version: info.Version,
		},
		Paths: openapi3.NewPaths(),
	}
	if server != "" {
		doc.Servers = openapi3.Servers{&openapi3.Server{URL: server}}
	}

	for _, tpl := range registry.Templates() {
		prefix := strings.Trim(tpl.Prefix, "/")
		if prefix == "" {
			prefix = tpl.Name
		}
		path := "/" + prefix
		if doc.Paths.Value(path) != nil {
			return nil, fmt.Errorf("apidoc: templates share path %q", path)
		}
		doc.Paths.Set(path, &openapi3.PathItem{Get: operation(tpl)})
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("apidoc: validate: %w", err)
	}
	return doc, nil
}

func operation(tpl schema.Template) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = tpl.Name
	op.Summary = fmt.Sprintf("Render the %s card", tpl.Name)

	op.AddParameter(openapi3.NewQueryParameter("username").
		WithDescription("Account whose statistics are rendered").
		WithRequired(true).
		WithSchema(openapi3.NewStringSchema()))

	for _, opt := range tpl.Options {
		if opt.Name == "username" {
			continue
		}
		op.AddParameter(openapi3.NewQueryParameter(opt.Name).WithSchema(optionSchema(opt)))
	}

	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Rendered image").
				WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{"image/svg+xml"})),
		}),
	)
	return op
}

func optionSchema(opt schema.Option) *openapi3.Schema {
	var s *openapi3.Schema
	switch opt.Kind() {
	case schema.OptionKindBool:
		s = openapi3.NewBoolSchema()
	case schema.OptionKindChoice:
		s = openapi3.NewStringSchema()
		choices := opt.Choices()
		enum := make([]any, 0, len(choices))
		for _, choice := range choices {
			enum = append(enum, choice)
		}
		if len(enum) > 0 {
			s.WithEnum(enum...)
		}
	default:
		s = openapi3.NewStringSchema()
	}
	if value, ok := opt.Default(); ok {
		if s.Type.Is(openapi3.TypeString) {
			value = fmt.Sprint(value)
		}
		s.WithDefault(value)
	}
	return s
}
