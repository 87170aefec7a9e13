package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-statsstudio/pkg/options"
)

func TestResolveDefault(t *testing.T) {
	cases := []struct {
		name   string
		value  any
		want   any
		wantOK bool
	}{
		{"objects", []any{map[string]any{"name": "solid"}, map[string]any{"name": "frame"}}, "solid", true},
		{"primitives", []any{"radar", "none"}, "radar", true},
		{"bool primitives", []any{true, false}, true, true},
		{"object", map[string]any{"name": "default", "label": "Default"}, "default", true},
		{"object without name", map[string]any{"label": "Default"}, nil, false},
		{"true", true, true, true},
		{"false", false, false, true},
		{"string", "dark", nil, false},
		{"number", float64(3), nil, false},
		{"empty list", []any{}, nil, false},
		{"nested list", []any{[]any{"a"}}, nil, false},
		{"null first", []any{nil, "x"}, nil, false},
		{"nil", nil, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ResolveDefault(tc.value)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if got != tc.want {
				t.Fatalf("default = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestComputeDefaults_VisitsEveryTemplate(t *testing.T) {
	templates := []Template{
		{Name: "A", Options: []Option{
			{Name: "theme", Value: []any{"dark", "light"}},
			{Name: "title", Value: "free text"},
		}},
		{Name: "B", Options: []Option{
			{Name: "show_info", Value: true},
			{Name: "theme", Value: []any{map[string]any{"name": "aurora"}}},
		}},
	}

	got := ComputeDefaults(templates)
	want := options.New(options.P("theme", "aurora"), options.P("show_info", true))
	if diff := cmp.Diff(want.Pairs(), got.Pairs()); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestOption_KindAndChoices(t *testing.T) {
	cases := []struct {
		opt     Option
		kind    OptionKind
		choices []string
	}{
		{Option{Name: "hide", Value: false}, OptionKindBool, nil},
		{Option{Name: "mode", Value: []any{"radar", "none"}}, OptionKindChoice, []string{"radar", "none"}},
		{Option{Name: "style", Value: []any{map[string]any{"name": "solid"}, map[string]any{"label": "x"}}}, OptionKindChoice, []string{"solid"}},
		{Option{Name: "size", Value: map[string]any{"name": "default"}}, OptionKindChoice, []string{"default"}},
		{Option{Name: "title", Value: ""}, OptionKindText, nil},
		{Option{Name: "year", Value: []any{}}, OptionKindText, nil},
	}
	for _, tc := range cases {
		if got := tc.opt.Kind(); got != tc.kind {
			t.Fatalf("%s: kind = %s, want %s", tc.opt.Name, got, tc.kind)
		}
		if diff := cmp.Diff(tc.choices, tc.opt.Choices()); diff != "" {
			t.Fatalf("%s: choices mismatch (-want +got):\n%s", tc.opt.Name, diff)
		}
	}
}
