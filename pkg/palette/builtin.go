package palette

import (
	theme "github.com/goliatone/go-theme"
)

// Builtin returns a store with the bundled palettes.
func Builtin() *Store {
	return NewStore(
		&theme.Manifest{
			Name:    "midnight",
			Version: "1.0.0",
			Tokens: map[string]string{
				TokenBackground: "#0d1117",
				TokenBorder:     "#30363d",
				TokenText:       "#c9d1d9",
				TokenTitle:      "#58a6ff",
			},
			Variants: map[string]theme.Variant{
				"contrast": {
					Tokens: map[string]string{
						TokenBackground: "#000000",
						TokenText:       "#ffffff",
					},
				},
			},
		},
		&theme.Manifest{
			Name:    "paper",
			Version: "1.0.0",
			Tokens: map[string]string{
				TokenBackground: "#fffefe",
				TokenBorder:     "#e4e2e2",
				TokenText:       "#434d58",
				TokenTitle:      "#2f80ed",
			},
		},
	)
}
