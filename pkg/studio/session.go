// Package studio owns the editing session: the Configuration Object, the
// selected template, and the derived query/URL views.
//
// A Session is single-threaded. Interaction handlers mutate it in turn and
// derived views are recomputed lazily on read, memoized until the next
// mutation.
package studio

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/goliatone/go-statsstudio/pkg/endpoint"
	"github.com/goliatone/go-statsstudio/pkg/options"
	"github.com/goliatone/go-statsstudio/pkg/schema"
)

// UsernameField is the mandatory Configuration Object key.
const UsernameField = "username"

// Option customises a Session.
type Option func(*Session)

// WithSeed replaces the registry-derived defaults with an explicit ordered
// seed. Fixed-schema hosts use it to keep their historical field order.
func WithSeed(seed *options.Values) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithEndpoints registers allow-list endpoints served by EndpointURL.
func WithEndpoints(endpoints ...endpoint.Endpoint) Option {
	return func(s *Session) {
		s.endpoints = append(s.endpoints, endpoints...)
	}
}

// WithBaseURL overrides the rendering service base URL declared by the
// registry.
func WithBaseURL(base string) Option {
	return func(s *Session) {
		s.baseURL = base
	}
}

// WithLogger routes session diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultSuppression omits template fields whose value equals the
// template's declared default from TemplateQueryString and URL.
func WithDefaultSuppression(enabled bool) Option {
	return func(s *Session) {
		s.suppressDefaults = enabled
	}
}

// WithUsername presets the username after seeding.
func WithUsername(username string) Option {
	return func(s *Session) {
		s.username = &username
	}
}

// Session is the in-memory editing state for one user.
type Session struct {
	id               string
	registry         *schema.Registry
	values           *options.Values
	seed             *options.Values
	selected         string
	baseURL          string
	endpoints        endpoint.Set
	suppressDefaults bool
	username         *string
	logger           *log.Logger

	revision uint64
	memoRev  uint64
	memo     map[string]string
}

// New creates a session over registry. The Configuration Object is seeded
// with username plus every resolvable template default, and the first
// template (or schema.FallbackTemplate) is selected with its own defaults
// applied. A descriptor option named username never seeds a value.
func New(registry *schema.Registry, opts ...Option) *Session {
	if registry == nil {
		registry = schema.NewRegistry("")
	}
	s := &Session{
		id:       uuid.NewString(),
		registry: registry,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.baseURL == "" {
		s.baseURL = registry.StatsURL()
	}
	s.logger = s.logger.With("session", s.id)
	s.seedValues()
	return s
}

func (s *Session) defaults() *options.Values {
	if s.seed != nil {
		return s.seed.Clone()
	}
	defaults := schema.ComputeDefaults(s.registry.Templates())
	defaults.Delete(UsernameField)
	return defaults
}

func (s *Session) seedValues() {
	s.values = options.New(options.P(UsernameField, ""))
	s.values.Initialize(s.defaults())
	if !s.values.Has(UsernameField) {
		s.values.Set(UsernameField, "")
	}
	if s.username != nil {
		s.values.Set(UsernameField, *s.username)
	}
	s.selected = s.registry.First()
	s.touch()
	// The flat seed lets later templates overwrite shared names, so the
	// initial selection gets the same reset as any later switch.
	s.ResetTemplateOptions(s.selected)
	s.logger.Debug("session seeded", "template", s.selected, "fields", s.values.Len())
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// Registry returns the template registry backing the session.
func (s *Session) Registry() *schema.Registry {
	return s.registry
}

// BaseURL returns the rendering service base URL.
func (s *Session) BaseURL() string {
	return s.baseURL
}

// Initialize seeds the Configuration Object with defaults unless it has
// already been seeded; sessions seed themselves on construction, so this
// only reports whether anything changed.
func (s *Session) Initialize(defaults *options.Values) bool {
	if !s.values.Initialize(defaults) {
		return false
	}
	s.touch()
	return true
}

// Reset discards every edit, re-seeds the Configuration Object, and selects
// the first template again.
func (s *Session) Reset() {
	s.seedValues()
}

// Set updates one field. Any name is accepted; the registry is the only
// authority on which fields a template serialises.
func (s *Session) Set(field string, value any) {
	s.values.Set(field, value)
	s.touch()
}

// SetUsername is shorthand for Set(UsernameField, username).
func (s *Session) SetUsername(username string) {
	s.Set(UsernameField, username)
}

// Get returns the current value of field.
func (s *Session) Get(field string) (any, bool) {
	return s.values.Get(field)
}

// Username returns the current username.
func (s *Session) Username() string {
	return s.values.String(UsernameField)
}

// Values returns a copy of the Configuration Object.
func (s *Session) Values() *options.Values {
	return s.values.Clone()
}

// Revision increases on every mutation.
func (s *Session) Revision() uint64 {
	return s.revision
}

func (s *Session) touch() {
	s.revision++
}

// view memoizes compute under key until the next mutation.
func (s *Session) view(key string, compute func() string) string {
	if s.memo == nil || s.memoRev != s.revision {
		s.memo = make(map[string]string)
		s.memoRev = s.revision
	}
	if out, ok := s.memo[key]; ok {
		return out
	}
	out := compute()
	s.memo[key] = out
	return out
}
