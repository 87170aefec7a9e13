// Package validation lints template descriptors. Parsing in pkg/schema is
// lenient and silently drops malformed entries; ValidateDescriptor reports
// them instead so descriptor authors can fix their documents.
package validation

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-statsstudio/pkg/schema"
)

// Issue represents a descriptor problem with its JSON pointer location.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Result captures validation outcomes.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

func (r *Result) add(path, field, format string, args ...any) {
	r.Valid = false
	r.Issues = append(r.Issues, Issue{Path: path, Field: field, Message: fmt.Sprintf(format, args...)})
}

// ValidateDescriptor checks a JSON or YAML descriptor document.
func ValidateDescriptor(raw []byte) Result {
	result := Result{Valid: true}

	doc, err := decode(raw)
	if err != nil {
		result.add("", "", "document is neither JSON nor YAML: %v", err)
		return result
	}
	root, ok := doc.(map[string]any)
	if !ok {
		result.add("", "", "document must be an object")
		return result
	}
	sidebar, ok := root["sidebar"].(map[string]any)
	if !ok {
		result.add("/sidebar", "", "sidebar object is required")
		return result
	}

	validateStatsURL(&result, sidebar["statsUrl"])

	menu, ok := sidebar["menu"].([]any)
	if !ok {
		result.add("/sidebar/menu", "", "menu array is required")
		return result
	}
	for i, entry := range menu {
		item, ok := entry.(map[string]any)
		if !ok || item["name"] != schema.TemplatesMenuName {
			continue
		}
		validateTemplates(&result, fmt.Sprintf("/sidebar/menu/%d/items", i), item["items"])
		return result
	}
	result.add("/sidebar/menu", "", "no %q menu entry", schema.TemplatesMenuName)
	return result
}

func decode(raw []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func validateStatsURL(result *Result, raw any) {
	value, ok := raw.(string)
	if !ok || strings.TrimSpace(value) == "" {
		result.add("/sidebar/statsUrl", "", "statsUrl must be a non-empty string")
		return
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		result.add("/sidebar/statsUrl", "", "statsUrl %q is not an absolute URL", value)
	}
}

func validateTemplates(result *Result, path string, raw any) {
	items, ok := raw.([]any)
	if !ok {
		result.add(path, "", "items must be an array")
		return
	}
	if len(items) == 0 {
		result.add(path, "", "templates menu declares no templates")
		return
	}

	names := make(map[string]string)
	prefixes := make(map[string]string)
	for i, entry := range items {
		itemPath := fmt.Sprintf("%s/%d", path, i)
		item, ok := entry.(map[string]any)
		if !ok {
			result.add(itemPath, "", "template must be an object")
			continue
		}
		name, _ := item["name"].(string)
		if strings.TrimSpace(name) == "" {
			result.add(itemPath+"/name", "", "template name is required")
			continue
		}
		if prev, dup := names[name]; dup {
			result.add(itemPath+"/name", name, "duplicate template name, first declared at %s", prev)
			continue
		}
		names[name] = itemPath

		prefix := name
		if rawPrefix, present := item["prefix"]; present {
			p, ok := rawPrefix.(string)
			if !ok {
				result.add(itemPath+"/prefix", name, "prefix must be a string")
			} else if strings.TrimSpace(p) != "" {
				prefix = strings.Trim(p, "/")
			}
		}
		if other, shared := prefixes[prefix]; shared {
			result.add(itemPath+"/prefix", name, "prefix %q is also used by template %q", prefix, other)
		} else {
			prefixes[prefix] = name
		}

		validateOptions(result, itemPath+"/options", name, item["options"])
	}
}

func validateOptions(result *Result, path, template string, raw any) {
	if raw == nil {
		return
	}
	opts, ok := raw.([]any)
	if !ok {
		result.add(path, template, "options must be an array")
		return
	}
	seen := make(map[string]struct{})
	for i, entry := range opts {
		optPath := fmt.Sprintf("%s/%d", path, i)
		opt, ok := entry.(map[string]any)
		if !ok {
			result.add(optPath, template, "option must be an object")
			continue
		}
		name, _ := opt["name"].(string)
		if strings.TrimSpace(name) == "" {
			result.add(optPath+"/name", template, "option name is required")
			continue
		}
		field := template + "." + name
		if _, dup := seen[name]; dup {
			result.add(optPath+"/name", field, "duplicate option %q", name)
			continue
		}
		seen[name] = struct{}{}

		switch value := opt["value"].(type) {
		case []any:
			if len(value) == 0 {
				result.add(optPath+"/value", field, "choice list is empty")
			} else if _, ok := schema.ResolveDefault(value); !ok {
				result.add(optPath+"/value", field, "first choice has no name")
			}
		case map[string]any:
			if _, ok := schema.ResolveDefault(value); !ok {
				result.add(optPath+"/value", field, "object value needs a string name")
			}
		case string, bool, nil:
		default:
			result.add(optPath+"/value", field, "unsupported value type %T", value)
		}
	}
}
