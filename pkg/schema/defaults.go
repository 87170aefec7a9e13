package schema

import (
	"github.com/goliatone/go-statsstudio/pkg/options"
)

// ResolveDefault derives a default from a declared option value:
//
//   - list of named objects: the first object's name
//   - list of primitives: the first element
//   - named object: its name
//   - boolean: itself
//
// Any other shape (plain strings, numbers, empty lists, null) has no default.
func ResolveDefault(value any) (any, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case []any:
		if len(v) == 0 {
			return nil, false
		}
		switch first := v[0].(type) {
		case map[string]any:
			name, ok := first["name"]
			if !ok || name == nil {
				return nil, false
			}
			return name, true
		case []any, nil:
			return nil, false
		default:
			return first, true
		}
	case map[string]any:
		name, ok := v["name"]
		if !ok || name == nil {
			return nil, false
		}
		return name, true
	default:
		return nil, false
	}
}

// ComputeDefaults flattens every template's resolvable option defaults into
// one mapping. Later templates overwrite values of names declared earlier but
// the first declaration keeps its position.
func ComputeDefaults(templates []Template) *options.Values {
	out := options.New()
	for _, tpl := range templates {
		out.Assign(tpl.Defaults())
	}
	return out
}
