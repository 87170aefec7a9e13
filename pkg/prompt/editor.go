// Package prompt walks a user through a session in the terminal: template,
// username, optional color preset, then every option the template declares.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-statsstudio/internal/sanitize"
	"github.com/goliatone/go-statsstudio/pkg/options"
	"github.com/goliatone/go-statsstudio/pkg/palette"
	"github.com/goliatone/go-statsstudio/pkg/schema"
)

const noPalette = "(none)"

// Session is the part of studio.Session the editor drives.
type Session interface {
	Registry() *schema.Registry
	SelectedTemplate() string
	SelectTemplate(name string)
	Template() (schema.Template, bool)
	Get(field string) (any, bool)
	Set(field string, value any)
	Username() string
	URL() string
}

// Option configures an Editor.
type Option func(*Editor)

// WithDriver overrides the prompt driver.
func WithDriver(driver PromptDriver) Option {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithPalettes offers the store's presets before the option prompts.
func WithPalettes(store *palette.Store) Option {
	return func(e *Editor) {
		e.palettes = store
	}
}

// Editor runs the interactive flow.
type Editor struct {
	driver   PromptDriver
	palettes *palette.Store
}

// NewEditor constructs an editor using the survey driver unless overridden.
func NewEditor(opts ...Option) *Editor {
	e := &Editor{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.driver == nil {
		e.driver = NewSurveyDriver(nil)
	}
	return e
}

// Run prompts for every field and mutates s in place. It stops at the first
// driver error; ErrAborted means the user cancelled.
func (e *Editor) Run(ctx context.Context, s Session) error {
	if ctx == nil {
		return errors.New("prompt: context is required")
	}
	if err := e.chooseTemplate(ctx, s); err != nil {
		return err
	}

	username, err := e.driver.Input(ctx, InputConfig{
		Message:   "GitHub username",
		Default:   s.Username(),
		Validator: requireText,
	})
	if err != nil {
		return err
	}
	s.Set("username", sanitize.Text(username))

	tpl, ok := s.Template()
	if !ok {
		return e.driver.Info(ctx, s.URL())
	}

	if err := e.choosePalette(ctx, s, tpl); err != nil {
		return err
	}

	for _, opt := range tpl.Options {
		if opt.Name == "username" {
			continue
		}
		if err := e.askOption(ctx, s, opt); err != nil {
			return fmt.Errorf("prompt: %s: %w", opt.Name, err)
		}
	}

	return e.driver.Info(ctx, s.URL())
}

func (e *Editor) chooseTemplate(ctx context.Context, s Session) error {
	names := s.Registry().Names()
	if len(names) < 2 {
		return nil
	}
	idx, err := e.driver.Select(ctx, SelectConfig{
		Message:      "Template",
		Options:      names,
		DefaultIndex: indexOf(names, s.SelectedTemplate()),
	})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(names) {
		s.SelectTemplate(names[idx])
	}
	return nil
}

func (e *Editor) choosePalette(ctx context.Context, s Session, tpl schema.Template) error {
	if e.palettes == nil {
		return nil
	}
	target, ok := paletteTarget(tpl)
	if !ok {
		return nil
	}
	choices := append([]string{noPalette}, e.palettes.Names()...)
	idx, err := e.driver.Select(ctx, SelectConfig{
		Message: "Color preset",
		Options: choices,
	})
	if err != nil {
		return err
	}
	if idx <= 0 || idx >= len(choices) {
		return nil
	}
	sel, err := e.palettes.Select(choices[idx], "")
	if err != nil {
		return err
	}
	palette.Apply(s, sel, target)
	return nil
}

func paletteTarget(tpl schema.Template) (palette.Target, bool) {
	return palette.DetectTarget(func(field string) bool {
		_, ok := tpl.Option(field)
		return ok
	})
}

func (e *Editor) askOption(ctx context.Context, s Session, opt schema.Option) error {
	current, _ := s.Get(opt.Name)

	switch opt.Kind() {
	case schema.OptionKindBool:
		def, _ := current.(bool)
		answer, err := e.driver.Confirm(ctx, ConfirmConfig{Message: label(opt.Name), Default: def})
		if err != nil {
			return err
		}
		s.Set(opt.Name, answer)
	case schema.OptionKindChoice:
		choices := opt.Choices()
		idx, err := e.driver.Select(ctx, SelectConfig{
			Message:      label(opt.Name),
			Options:      choices,
			DefaultIndex: indexOf(choices, options.Stringify(current)),
		})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(choices) {
			s.Set(opt.Name, choices[idx])
		}
	default:
		answer, err := e.driver.Input(ctx, InputConfig{
			Message: label(opt.Name),
			Default: options.Stringify(current),
			Help:    "Leave empty to omit",
		})
		if err != nil {
			return err
		}
		s.Set(opt.Name, sanitize.Text(answer))
	}
	return nil
}

func label(name string) string {
	out := strings.ReplaceAll(name, "_", " ")
	if out == "" {
		return name
	}
	return strings.ToUpper(out[:1]) + out[1:]
}

func requireText(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a value is required")
	}
	return nil
}
