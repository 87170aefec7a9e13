package schema

import (
	"embed"
	"io/fs"
)

// DefaultDescriptor names the bundled descriptor inside EmbeddedFS.
const DefaultDescriptor = "studio.json"

//go:embed defaults/*.json
var embeddedDescriptors embed.FS

// EmbeddedFS returns the bundled descriptor documents. Pair it with
// SourceFromFS(DefaultDescriptor) to load the default templates.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDescriptors, "defaults")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
