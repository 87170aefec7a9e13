package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-statsstudio/pkg/options"
	"github.com/goliatone/go-statsstudio/pkg/prompt"
	"github.com/goliatone/go-statsstudio/pkg/testsupport"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestURL_GraphTemplateWithAssignments(t *testing.T) {
	out, _, err := execute(t, "url", "--username", "octocat", "--template", "graph", "--set", "animate=fast", "--set", "year=2024")
	if err != nil {
		t.Fatalf("url: %v", err)
	}
	want := "https://stats.pphat.top/graph?username=octocat&theme=aurora&animate=fast&size=default&show_title=true&show_total_contribution=true&show_background=true&year=2024\n"
	if out != want {
		t.Fatalf("output mismatch:\nwant %s\ngot  %s", want, out)
	}
}

func TestURL_MarkdownFormat(t *testing.T) {
	out, _, err := execute(t, "url", "-u", "octocat", "--format", "markdown", "--alt", "My card")
	if err != nil {
		t.Fatalf("url: %v", err)
	}
	want := "![My card](https://stats.pphat.top/stats?username=octocat&theme=default&avatar_mode=radar&data_border_style=solid&data_border_frame_position=in)\n"
	if out != want {
		t.Fatalf("output mismatch:\nwant %s\ngot  %s", want, out)
	}
}

func TestURL_SuppressDefaults(t *testing.T) {
	out, _, err := execute(t, "url", "-u", "octocat", "--suppress-defaults", "--set", "avatar_mode=none")
	if err != nil {
		t.Fatalf("url: %v", err)
	}
	if want := "https://stats.pphat.top/stats?username=octocat&avatar_mode=none\n"; out != want {
		t.Fatalf("output mismatch:\nwant %s\ngot  %s", want, out)
	}
}

func TestURL_PaletteThenOverride(t *testing.T) {
	out, _, err := execute(t, "url", "-u", "octocat", "--palette", "paper", "--set", "titleColor=000000", "--stats-url", "https://render.example.test/")
	if err != nil {
		t.Fatalf("url: %v", err)
	}
	if !strings.HasPrefix(out, "https://render.example.test/stats?") {
		t.Fatalf("expected base override, got %s", out)
	}
	if !strings.Contains(out, "bgColor=fffefe") || !strings.Contains(out, "titleColor=000000") {
		t.Fatalf("expected palette and override colors, got %s", out)
	}
}

func TestURL_RequiresUsername(t *testing.T) {
	_, _, err := execute(t, "url")
	if !errors.Is(err, errUsernameRequired) {
		t.Fatalf("expected username error, got %v", err)
	}
}

func TestURL_UnknownTemplate(t *testing.T) {
	_, _, err := execute(t, "url", "-u", "octocat", "--template", "nope")
	if err == nil || !strings.Contains(err.Error(), "unknown template") {
		t.Fatalf("expected unknown template error, got %v", err)
	}
}

func TestClassic_PrintsEndpointURLs(t *testing.T) {
	out, _, err := execute(t, "classic", "-u", "octocat", "--set", "type=pie")
	if err != nil {
		t.Fatalf("classic: %v", err)
	}
	for _, want := range []string{
		"https://stats.pphat.top/stats?username=octocat&avatar_mode=radar&data_border_style=solid&data_border_frame_position=in",
		"https://stats.pphat.top/languages?username=octocat&show_info=true&type=pie",
		"https://stats.pphat.top/graph?username=octocat&theme=aurora&show_title=true&show_total_contribution=true&show_background=true",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in:\n%s", want, out)
		}
	}
}

func TestTemplates_JSON(t *testing.T) {
	out, _, err := execute(t, "templates", "--json")
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	var got []templateSummary
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	names := make([]string, 0, len(got))
	for _, s := range got {
		names = append(names, s.Name)
	}
	if diff := cmp.Diff([]string{"stats", "languages", "graph"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplates_FallsBackToClassic(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	out, stderr, err := execute(t, "templates", "--descriptor", missing)
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if !strings.Contains(out, "stats") || strings.Contains(out, "graph") {
		t.Fatalf("expected classic template only, got:\n%s", out)
	}
	if !strings.Contains(stderr, "descriptor unavailable") {
		t.Fatalf("expected warning, got %q", stderr)
	}
}

func TestTemplates_YAMLDescriptor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.yaml")
	body := []byte(`sidebar:
  statsUrl: https://render.example.test
  menu:
    - name: templates
      items:
        - name: streak
          prefix: streak
          options:
            - name: mode
              value: [daily, weekly]
`)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, _, err := execute(t, "url", "--descriptor", path, "-u", "octocat")
	if err != nil {
		t.Fatalf("url: %v", err)
	}
	if out != "https://render.example.test/streak?username=octocat&mode=daily\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestOpenAPI_YAML(t *testing.T) {
	out, _, err := execute(t, "openapi", "--format", "yaml", "--title", "Cards")
	if err != nil {
		t.Fatalf("openapi: %v", err)
	}
	for _, want := range []string{"openapi: 3.0.3", "title: Cards", "/graph:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestOpenAPI_UnknownFormat(t *testing.T) {
	if _, _, err := execute(t, "openapi", "--format", "xml"); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestClassic_Golden(t *testing.T) {
	out, _, err := execute(t, "classic", "--username", "octocat")
	if err != nil {
		t.Fatalf("classic: %v", err)
	}
	golden := filepath.Join("testdata", "classic.golden")
	if testsupport.WriteMaybeGolden(t, golden, []byte(out)) {
		return
	}
	if diff := testsupport.CompareGolden(testsupport.MustReadGoldenString(t, golden), out); diff != "" {
		t.Fatalf("golden mismatch (-want +got):\n%s", diff)
	}
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("sidebar:\n  statsUrl: https://x.test\n  menu:\n    - name: templates\n      items:\n        - name: stats\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(bad, []byte("sidebar:\n  statsUrl: https://x.test\n  menu: []\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if out, _, err := execute(t, "lint", good); err != nil || out != "" {
		t.Fatalf("expected clean lint, got %q (%v)", out, err)
	}
	out, _, err := execute(t, "lint", good, bad)
	if !errors.Is(err, errLintFailed) {
		t.Fatalf("expected lint failure, got %v", err)
	}
	if !strings.Contains(out, bad+`: /sidebar/menu: no "templates" menu entry`) {
		t.Fatalf("unexpected output %q", out)
	}
}

type abortingDriver struct{}

func (abortingDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	return "", prompt.ErrAborted
}

func (abortingDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, prompt.ErrAborted
}

func (abortingDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	return 0, prompt.ErrAborted
}

func (abortingDriver) Info(context.Context, string) error { return nil }

func TestEdit_AbortIsNotAnError(t *testing.T) {
	prev := driverFactory
	driverFactory = func(*cobra.Command) prompt.PromptDriver { return abortingDriver{} }
	t.Cleanup(func() { driverFactory = prev })

	if _, _, err := execute(t, "edit"); err != nil {
		t.Fatalf("expected nil error on abort, got %v", err)
	}
}

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"hide_rank=true", "custom_title=<b>Hi</b> there", "year="})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []options.Pair{
		options.P("hide_rank", true),
		options.P("custom_title", "Hi there"),
		options.P("year", ""),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("pairs mismatch (-want +got):\n%s", diff)
	}

	if _, err := parseAssignments([]string{"novalue"}); err == nil {
		t.Fatalf("expected error for missing '='")
	}
}
