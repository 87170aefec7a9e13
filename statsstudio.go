// Package statsstudio builds share URLs for a GitHub statistics card
// rendering service. A session holds the ordered card options, tracks the
// selected template and derives query strings and URLs from them. The
// sub-packages carry the pieces: options (ordered values and encoding),
// endpoint (allow-list query rules), schema (template descriptors), studio
// (sessions) and classic (the fixed three-card layout).
package statsstudio

import (
	"github.com/goliatone/go-statsstudio/pkg/classic"
	"github.com/goliatone/go-statsstudio/pkg/options"
	"github.com/goliatone/go-statsstudio/pkg/schema"
	"github.com/goliatone/go-statsstudio/pkg/studio"
)

// Session aliases studio.Session for callers using the root package.
type Session = studio.Session

// Values aliases the ordered Configuration Object.
type Values = options.Values

// Registry aliases schema.Registry.
type Registry = schema.Registry

// NewSession starts a descriptor-driven session over registry.
func NewSession(registry *schema.Registry, opts ...studio.Option) *studio.Session {
	return studio.New(registry, opts...)
}

// NewClassicSession starts a session over the fixed stats, languages and
// graph endpoints.
func NewClassicSession(opts ...studio.Option) *studio.Session {
	return classic.NewSession(opts...)
}
