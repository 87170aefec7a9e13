package options

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildQuery_OmitsUnsetValues(t *testing.T) {
	values := New(
		P("username", "octocat"),
		P("nil_value", nil),
		P("empty", ""),
		P("disabled", false),
		P("enabled", true),
		P("theme", "dark"),
	)

	got := BuildQuery(values, nil)
	want := "username=octocat&enabled=true&theme=dark"
	if got != want {
		t.Fatalf("query mismatch:\nwant %s\ngot  %s", want, got)
	}
}

func TestBuildQuery_NeverEmitsOmittedKeys(t *testing.T) {
	cases := map[string]any{
		"nil":         nil,
		"empty":       "",
		"false":       false,
		"nil_pointer": (*string)(nil),
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			values := New(P("username", "octocat"), P("field", value))
			parsed, err := url.ParseQuery(BuildQuery(values, nil))
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			if parsed.Has("field") {
				t.Fatalf("expected field to be omitted, got %v", parsed)
			}
		})
	}
}

func TestBuildQuery_FollowsInsertionOrder(t *testing.T) {
	values := New(P("zeta", "1"), P("alpha", "2"))
	values.Set("middle", "3")
	values.Set("zeta", "4")

	if got, want := BuildQuery(values, nil), "zeta=4&alpha=2&middle=3"; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestBuildQuery_AppliesFilter(t *testing.T) {
	values := New(P("username", "octocat"), P("theme", "dark"), P("hide_rank", true))

	if got, want := BuildQuery(values, Only("username", "hide_rank")), "username=octocat&hide_rank=true"; got != want {
		t.Fatalf("only: want %s, got %s", want, got)
	}
	if got, want := BuildQuery(values, Except("theme")), "username=octocat&hide_rank=true"; got != want {
		t.Fatalf("except: want %s, got %s", want, got)
	}
}

func TestBuildQuery_EncodesKeysAndValues(t *testing.T) {
	values := New(P("custom title", "Hello & welcome"), P("color", "#ff0"))

	got := BuildQuery(values, nil)
	want := "custom+title=Hello+%26+welcome&color=%23ff0"
	if got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestBuildQuery_RoundTripsRetainedSubset(t *testing.T) {
	values := New(
		P("username", "octocat"),
		P("custom_title", "My stats"),
		P("hide_title", false),
		P("show_info", true),
		P("bgColor", ""),
		P("year", float64(2024)),
	)

	parsed, err := url.ParseQuery(BuildQuery(values, nil))
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}

	got := map[string]string{}
	for key := range parsed {
		got[key] = parsed.Get(key)
	}
	want := map[string]string{
		"username":     "octocat",
		"custom_title": "My stats",
		"show_info":    "true",
		"year":         "2024",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStringify(t *testing.T) {
	yes, no := true, false
	name := "radar"
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"dark", "dark"},
		{true, "true"},
		{false, "false"},
		{&yes, "true"},
		{&no, "false"},
		{&name, "radar"},
		{42, "42"},
	}
	for _, tc := range cases {
		if got := Stringify(tc.in); got != tc.want {
			t.Fatalf("Stringify(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseBool(t *testing.T) {
	if got := ParseBool(" TRUE "); got != true {
		t.Fatalf("expected true, got %#v", got)
	}
	if got := ParseBool("false"); got != false {
		t.Fatalf("expected false, got %#v", got)
	}
	if got := ParseBool("pie"); got != "pie" {
		t.Fatalf("expected passthrough, got %#v", got)
	}
}
