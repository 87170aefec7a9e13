package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-statsstudio/pkg/palette"
	"github.com/goliatone/go-statsstudio/pkg/snippet"
	"github.com/goliatone/go-statsstudio/pkg/studio"
)

type urlOptions struct {
	template string
	username string
	sets     []string
	format   string
	palette  string
	variant  string
	alt      string
	link     string
	width    int
}

func newURLCmd(a *app) *cobra.Command {
	opts := &urlOptions{}
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the card URL for a template",
		Example: `  statsstudio url --username octocat --template graph --set animate=fast
  statsstudio url --username octocat --palette paper --format markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runURL(cmd, a, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.template, "template", "t", "", "template name (config template or first declared)")
	flags.StringVarP(&opts.username, "username", "u", "", "GitHub username")
	flags.StringArrayVar(&opts.sets, "set", nil, "option assignment key=value (repeatable)")
	flags.StringVarP(&opts.format, "format", "f", string(snippet.FormatURL), "output format: url, markdown, html")
	flags.StringVar(&opts.palette, "palette", "", "color preset applied before --set values")
	flags.StringVar(&opts.variant, "variant", "", "palette variant")
	flags.StringVar(&opts.alt, "alt", "", "alt text for markdown and html output")
	flags.StringVar(&opts.link, "link", "", "wrap html output in a link")
	flags.IntVar(&opts.width, "width", 0, "image width for html output")
	return cmd
}

func runURL(cmd *cobra.Command, a *app, opts *urlOptions) error {
	assignments, err := parseAssignments(opts.sets)
	if err != nil {
		return err
	}

	reg := a.registry(cmd.Context())
	session := studio.New(reg, a.sessionOptions(opts.username)...)

	name := strings.TrimSpace(opts.template)
	if name == "" {
		name = a.cfg.Template
	}
	if name != "" {
		if _, ok := reg.Template(name); !ok {
			return fmt.Errorf("unknown template %q (available: %s)", name, strings.Join(reg.Names(), ", "))
		}
		session.SelectTemplate(name)
	}

	if opts.palette != "" {
		if err := applyPalette(session, opts.palette, opts.variant); err != nil {
			return err
		}
	}
	for _, pair := range assignments {
		session.Set(pair.Key, pair.Value)
	}

	if strings.TrimSpace(session.Username()) == "" {
		return errUsernameRequired
	}

	engine, err := snippet.New()
	if err != nil {
		return err
	}
	out, err := engine.Render(snippet.Format(opts.format), snippet.Data{
		URL:   session.URL(),
		Alt:   opts.alt,
		Link:  opts.link,
		Width: opts.width,
	})
	if err != nil {
		return err
	}
	return writeLine(cmd.OutOrStdout(), out)
}

func applyPalette(session *studio.Session, name, variant string) error {
	tpl, ok := session.Template()
	if !ok {
		return fmt.Errorf("palette %q: no template selected", name)
	}
	target, ok := palette.DetectTarget(func(field string) bool {
		_, declared := tpl.Option(field)
		return declared
	})
	if !ok {
		return fmt.Errorf("palette %q: template %q declares no color fields", name, tpl.Name)
	}
	sel, err := palette.Builtin().Select(name, variant)
	if err != nil {
		return err
	}
	palette.Apply(session, sel, target)
	return nil
}
