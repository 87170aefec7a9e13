package statsstudio

import (
	"io/fs"

	"github.com/goliatone/go-statsstudio/pkg/schema"
	"github.com/goliatone/go-statsstudio/pkg/snippet"
)

// EmbeddedDescriptors exposes the bundled template descriptors so callers can
// serve or extend them without importing the schema package directly.
func EmbeddedDescriptors() fs.FS {
	return schema.EmbeddedFS()
}

// EmbeddedSnippets exposes the bundled embed snippet templates.
func EmbeddedSnippets() fs.FS {
	return snippet.TemplatesFS()
}
