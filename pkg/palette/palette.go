// Package palette applies go-theme manifests as color presets. A manifest's
// tokens (bg, border, text, title) are copied into the color fields of a
// session so users can start from a named look instead of four hex inputs.
package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Token names read from manifests.
const (
	TokenBackground = "bg"
	TokenBorder     = "border"
	TokenText       = "text"
	TokenTitle      = "title"
)

// ErrUnknownPalette reports a palette or variant that is not registered.
var ErrUnknownPalette = errors.New("palette: unknown palette")

// Store holds manifests by name and implements theme.ThemeSelector.
type Store struct {
	manifests map[string]*theme.Manifest
	order     []string
}

var _ theme.ThemeSelector = (*Store)(nil)

// NewStore registers manifests. Nil manifests and blank names are skipped;
// a later manifest replaces an earlier one with the same name.
func NewStore(manifests ...*theme.Manifest) *Store {
	s := &Store{manifests: make(map[string]*theme.Manifest)}
	for _, m := range manifests {
		s.Register(m)
	}
	return s
}

// Register adds or replaces a manifest.
func (s *Store) Register(m *theme.Manifest) {
	if m == nil {
		return
	}
	name := strings.TrimSpace(m.Name)
	if name == "" {
		return
	}
	if _, exists := s.manifests[name]; !exists {
		s.order = append(s.order, name)
	}
	s.manifests[name] = m
}

// Names lists palettes in registration order.
func (s *Store) Names() []string {
	return append([]string(nil), s.order...)
}

// Variants lists the variant names of a palette, sorted.
func (s *Store) Variants(name string) []string {
	m, ok := s.manifests[name]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(m.Variants))
	for variant := range m.Variants {
		out = append(out, variant)
	}
	sort.Strings(out)
	return out
}

// Select implements theme.ThemeSelector. An empty variant selects the base
// tokens.
func (s *Store) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	m, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	if variant != "" {
		if _, ok := m.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q has no variant %q", ErrUnknownPalette, name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: m}, nil
}

// Resolve merges the manifest tokens with the selected variant's overrides.
func Resolve(sel *theme.Selection) map[string]string {
	out := map[string]string{}
	if sel == nil || sel.Manifest == nil {
		return out
	}
	for key, value := range sel.Manifest.Tokens {
		out[key] = value
	}
	if sel.Variant == "" {
		return out
	}
	if variant, ok := sel.Manifest.Variants[sel.Variant]; ok {
		for key, value := range variant.Tokens {
			out[key] = value
		}
	}
	return out
}
