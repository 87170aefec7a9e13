package snippet

import (
	"errors"
	"testing"
	"testing/fstest"
)

const statsURL = "https://stats.example.test/stats?username=octocat&theme=dark"

func TestEngine_RenderBuiltins(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	cases := []struct {
		format Format
		data   Data
		want   string
	}{
		{FormatURL, Data{URL: statsURL}, statsURL},
		{FormatMarkdown, Data{URL: statsURL, Alt: "octocat stats"}, "![octocat stats](" + statsURL + ")"},
		{FormatHTML, Data{URL: statsURL}, `<img src="https://stats.example.test/stats?username=octocat&amp;theme=dark" alt="GitHub stats" />`},
		{FormatHTML, Data{URL: statsURL, Link: "https://github.com/octocat", Width: 400}, `<a href="https://github.com/octocat"><img src="https://stats.example.test/stats?username=octocat&amp;theme=dark" alt="GitHub stats" width="400" /></a>`},
	}
	for _, tc := range cases {
		got, err := engine.Render(tc.format, tc.data)
		if err != nil {
			t.Fatalf("render %s: %v", tc.format, err)
		}
		if got != tc.want {
			t.Fatalf("%s mismatch:\nwant %s\ngot  %s", tc.format, tc.want, got)
		}
	}
}

func TestEngine_HTMLEscapesAltText(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	got, err := engine.Render(FormatHTML, Data{URL: statsURL, Alt: `"><script>`})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<img src="https://stats.example.test/stats?username=octocat&amp;theme=dark" alt="&quot;&gt;&lt;script&gt;" />`
	if got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestEngine_UnknownFormat(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := engine.Render("bbcode", Data{URL: statsURL}); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestEngine_CustomFS(t *testing.T) {
	files := fstest.MapFS{"bbcode.tmpl": {Data: []byte("[img]{{ url|safe }}[/img]")}}
	engine, err := New(WithFS(files), WithExtension("tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	got, err := engine.Render("bbcode", Data{URL: statsURL})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "[img]" + statsURL + "[/img]"; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	got, err := engine.RenderString("{{ alt }}: {{ url|safe }}", Data{URL: statsURL, Alt: "Stats"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if want := "Stats: " + statsURL; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}
