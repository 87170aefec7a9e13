package statsstudio

import (
	"context"

	"github.com/charmbracelet/log"

	internalLoader "github.com/goliatone/go-statsstudio/internal/schema/loader"
	"github.com/goliatone/go-statsstudio/pkg/schema"
)

// NewLoader constructs a descriptor loader using the internal implementation
// while keeping the concrete type hidden from consumers. A nil logger
// discards output.
func NewLoader(logger *log.Logger, options ...schema.LoaderOption) schema.Loader {
	cfg := schema.NewLoaderOptions(options...)
	return internalLoader.New(cfg, logger)
}

// Parse decodes a JSON or YAML descriptor document into a registry.
func Parse(data []byte) (*schema.Registry, error) {
	return schema.Parse(data)
}

// LoadRegistry fetches and parses src. A nil src loads the bundled
// descriptor.
func LoadRegistry(ctx context.Context, src schema.Source, options ...schema.LoaderOption) (*schema.Registry, error) {
	if src == nil {
		src = schema.SourceFromFS(schema.DefaultDescriptor)
		options = append([]schema.LoaderOption{schema.WithFileSystem(schema.EmbeddedFS())}, options...)
	}
	return schema.Load(ctx, NewLoader(nil, options...), src)
}
