// Package snippet renders copy-ready embed snippets (plain URL, Markdown
// image, HTML image) for a rendered stats URL.
package snippet

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Format selects a snippet template.
type Format string

const (
	FormatURL      Format = "url"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists the built-in formats.
func Formats() []Format {
	return []Format{FormatURL, FormatMarkdown, FormatHTML}
}

// ErrUnknownFormat reports a format without a template.
var ErrUnknownFormat = errors.New("snippet: unknown format")

// Data feeds a snippet template.
type Data struct {
	URL   string
	Alt   string
	Link  string
	Width int
}

func (d Data) context() pongo2.Context {
	alt := strings.TrimSpace(d.Alt)
	if alt == "" {
		alt = "GitHub stats"
	}
	return pongo2.Context{
		"url":   d.URL,
		"alt":   alt,
		"link":  d.Link,
		"width": d.Width,
	}
}

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the bundled snippet templates rooted at their
// directory, e.g. for use as a base when overriding a single format.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// Option configures an Engine.
type Option func(*config)

type config struct {
	templates fs.FS
	extension string
}

// WithFS replaces the bundled templates. Files are looked up as
// <format><extension>.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// WithExtension overrides the template extension (default ".tpl").
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// Engine renders snippets through a pongo2 template set.
type Engine struct {
	mu sync.RWMutex

	templateSet *pongo2.TemplateSet
	templates   map[string]*pongo2.Template
	tplExt      string
}

// New constructs an Engine over the bundled templates unless WithFS is given.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".tpl"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.templates == nil {
		cfg.templates = TemplatesFS()
	}

	return &Engine{
		templateSet: pongo2.NewSet("statsstudio-snippets", pongo2.NewFSLoader(cfg.templates)),
		templates:   make(map[string]*pongo2.Template),
		tplExt:      cfg.extension,
	}, nil
}

// Render executes the template for format with data.
func (e *Engine) Render(format Format, data Data) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("snippet: engine is nil")
	}
	name := strings.ToLower(strings.TrimSpace(string(format)))
	if name == "" {
		name = string(FormatURL)
	}

	tmpl, err := e.getTemplate(name + e.tplExt)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(data.context(), &buf); err != nil {
		return "", fmt.Errorf("snippet: execute %q: %w", name, err)
	}
	return buf.String(), nil
}

// RenderString executes an ad-hoc template body, for user supplied formats.
func (e *Engine) RenderString(body string, data Data) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("snippet: engine is nil")
	}
	tmpl, err := e.templateSet.FromString(body)
	if err != nil {
		return "", fmt.Errorf("snippet: parse template string: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(data.context(), &buf); err != nil {
		return "", fmt.Errorf("snippet: execute template string: %w", err)
	}
	return buf.String(), nil
}

func (e *Engine) getTemplate(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[path]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.templateSet.FromFile(path)
	if err != nil {
		return nil, err
	}
	e.templates[path] = tmpl
	return tmpl, nil
}
