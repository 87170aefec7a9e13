package validation

import (
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-statsstudio/pkg/schema"
)

func TestValidateDescriptor_EmbeddedIsValid(t *testing.T) {
	raw, err := fs.ReadFile(schema.EmbeddedFS(), schema.DefaultDescriptor)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	result := ValidateDescriptor(raw)
	if !result.Valid {
		t.Fatalf("expected valid descriptor, got %v", result.Issues)
	}
}

func TestValidateDescriptor_ReportsProblems(t *testing.T) {
	raw := []byte(`{
  "sidebar": {
    "statsUrl": "stats.example.test",
    "menu": [
      {"name": "templates", "items": [
        {"name": "stats", "options": [
          {"name": "theme", "value": []},
          {"name": "theme", "value": ["dark"]},
          {"value": true},
          {"name": "size", "value": {"label": "big"}},
          {"name": "year", "value": 2024}
        ]},
        {"name": "stats"},
        {"name": "cards", "prefix": "/stats/"}
      ]}
    ]
  }
}`)

	got := ValidateDescriptor(raw)
	want := Result{
		Valid: false,
		Issues: []Issue{
			{Path: "/sidebar/statsUrl", Message: `statsUrl "stats.example.test" is not an absolute URL`},
			{Path: "/sidebar/menu/0/items/0/options/0/value", Field: "stats.theme", Message: "choice list is empty"},
			{Path: "/sidebar/menu/0/items/0/options/1/name", Field: "stats.theme", Message: `duplicate option "theme"`},
			{Path: "/sidebar/menu/0/items/0/options/2/name", Field: "stats", Message: "option name is required"},
			{Path: "/sidebar/menu/0/items/0/options/3/value", Field: "stats.size", Message: "object value needs a string name"},
			{Path: "/sidebar/menu/0/items/0/options/4/value", Field: "stats.year", Message: "unsupported value type float64"},
			{Path: "/sidebar/menu/0/items/1/name", Field: "stats", Message: "duplicate template name, first declared at /sidebar/menu/0/items/0"},
			{Path: "/sidebar/menu/0/items/2/prefix", Field: "cards", Message: `prefix "stats" is also used by template "stats"`},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateDescriptor_MissingTemplatesMenu(t *testing.T) {
	got := ValidateDescriptor([]byte("sidebar:\n  statsUrl: https://x.test\n  menu:\n    - name: home\n"))
	if got.Valid || len(got.Issues) != 1 || got.Issues[0].Path != "/sidebar/menu" {
		t.Fatalf("expected missing menu issue, got %+v", got)
	}
}

func TestValidateDescriptor_Garbage(t *testing.T) {
	got := ValidateDescriptor([]byte("{not: [valid"))
	if got.Valid || len(got.Issues) != 1 {
		t.Fatalf("expected a single decode issue, got %+v", got)
	}
}

func TestIssue_String(t *testing.T) {
	issue := Issue{Path: "/sidebar", Message: "sidebar object is required"}
	if issue.String() != "/sidebar: sidebar object is required" {
		t.Fatalf("unexpected %q", issue.String())
	}
}
