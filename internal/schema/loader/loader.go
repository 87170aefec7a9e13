package loader

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	gocache "github.com/patrickmn/go-cache"

	"github.com/goliatone/go-statsstudio/pkg/schema"
)

// payloads is shared by every Loader so a file or URL descriptor is fetched
// once per process. fs.FS sources are not cached because two filesystems may
// share a name.
var payloads = gocache.New(gocache.NoExpiration, 0)

// Loader implements schema.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	cache     *gocache.Cache
	logger    *log.Logger
}

var _ schema.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options schema.LoaderOptions, logger *log.Logger) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	l := &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		logger:    logger,
	}
	if !options.DisableCache {
		l.cache = payloads
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	return l
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	if src == nil {
		return schema.Document{}, errors.New("schema loader: source is nil")
	}

	key := cacheKey(src)
	cacheable := l.cache != nil && src.Kind() != schema.SourceKindFS
	if cacheable {
		if cached, ok := l.cache.Get(key); ok {
			l.logger.Debug("descriptor cache hit", "source", src.Location())
			return schema.NewDocument(src, cached.([]byte))
		}
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case schema.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case schema.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case schema.SourceKindURL:
		if !l.allowHTTP {
			return schema.Document{}, errors.New("schema loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("schema loader: unsupported source kind")
	}
	if err != nil {
		return schema.Document{}, err
	}

	doc, err := schema.NewDocument(src, data)
	if err != nil {
		return schema.Document{}, err
	}
	if cacheable {
		l.cache.Set(key, doc.Raw(), gocache.NoExpiration)
	}
	l.logger.Debug("descriptor loaded", "source", src.Location(), "bytes", len(data))
	return doc, nil
}

// Forget drops a cached payload so the next Load refetches it.
func (l *Loader) Forget(src schema.Source) {
	if l.cache == nil || src == nil {
		return
	}
	l.cache.Delete(cacheKey(src))
}

func cacheKey(src schema.Source) string {
	return string(src.Kind()) + ":" + src.Location()
}
