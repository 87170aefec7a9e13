package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-statsstudio/pkg/palette"
	"github.com/goliatone/go-statsstudio/pkg/schema"
	"github.com/goliatone/go-statsstudio/pkg/studio"
)

type stubDriver struct {
	inputs   []string
	confirms []bool
	selects  []string
	infos    []string
	err      error

	asked []string
}

func (d *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.asked = append(d.asked, "input:"+cfg.Message)
	if d.err != nil {
		return "", d.err
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (d *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	d.asked = append(d.asked, "confirm:"+cfg.Message)
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.asked = append(d.asked, "select:"+cfg.Message)
	answer := d.selects[0]
	d.selects = d.selects[1:]
	return indexOf(cfg.Options, answer), nil
}

func (d *stubDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func registry() *schema.Registry {
	return schema.NewRegistry("https://stats.example.test",
		schema.Template{Name: "stats", Prefix: "stats", Options: []schema.Option{
			{Name: "hide_rank", Value: false},
			{Name: "avatar_mode", Value: []any{"radar", "none"}},
			{Name: "custom_title", Value: ""},
			{Name: "bgColor", Value: ""},
		}},
		schema.Template{Name: "graph", Prefix: "graph", Options: []schema.Option{
			{Name: "animate", Value: []any{"glow", "fast"}},
		}},
	)
}

func TestEditor_RunWalksTemplateOptions(t *testing.T) {
	driver := &stubDriver{
		selects:  []string{"stats", "none"},
		inputs:   []string{"  octocat ", "<b>My</b> stats", "101010"},
		confirms: []bool{true},
	}
	s := studio.New(registry())

	if err := NewEditor(WithDriver(driver)).Run(context.Background(), s); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := "https://stats.example.test/stats?username=octocat&hide_rank=true&avatar_mode=none&custom_title=My+stats&bgColor=101010"
	if got := s.URL(); got != want {
		t.Fatalf("url mismatch:\nwant %s\ngot  %s", want, got)
	}
	if len(driver.infos) != 1 || driver.infos[0] != want {
		t.Fatalf("expected final URL to be reported, got %v", driver.infos)
	}
}

func TestEditor_SwitchesTemplateBeforeAsking(t *testing.T) {
	driver := &stubDriver{
		selects: []string{"graph", "fast"},
		inputs:  []string{"octocat"},
	}
	s := studio.New(registry())

	if err := NewEditor(WithDriver(driver)).Run(context.Background(), s); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := s.URL(), "https://stats.example.test/graph?username=octocat&animate=fast"; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
	for _, asked := range driver.asked {
		if asked == "confirm:Hide rank" {
			t.Fatalf("stats options must not be asked for the graph template")
		}
	}
}

func TestEditor_AppliesPalette(t *testing.T) {
	driver := &stubDriver{
		selects:  []string{"stats", "paper", "radar"},
		inputs:   []string{"octocat", "", "fffefe"},
		confirms: []bool{false},
	}
	s := studio.New(registry())

	if err := NewEditor(WithDriver(driver), WithPalettes(palette.Builtin())).Run(context.Background(), s); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, _ := s.Get("bgColor"); got != "fffefe" {
		t.Fatalf("expected palette background, got %v", got)
	}
	if got, _ := s.Get("titleColor"); got != "2f80ed" {
		t.Fatalf("expected palette title color even when undeclared, got %v", got)
	}
}

func TestEditor_PropagatesAbort(t *testing.T) {
	driver := &stubDriver{selects: []string{"stats"}, err: ErrAborted}
	s := studio.New(registry())

	if err := NewEditor(WithDriver(driver)).Run(context.Background(), s); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestLabel(t *testing.T) {
	if got := label("show_total_contribution"); got != "Show total contribution" {
		t.Fatalf("unexpected label %q", got)
	}
}
