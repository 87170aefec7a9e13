package classic

import (
	"github.com/goliatone/go-statsstudio/pkg/studio"
)

// NewSession builds a fixed-schema session: classic seed order, the built-in
// stats template, and the three allow-list endpoints. Extra options are
// applied after the classic ones.
func NewSession(opts ...studio.Option) *studio.Session {
	base := []studio.Option{
		studio.WithSeed(Defaults()),
		studio.WithEndpoints(Endpoints()...),
	}
	return studio.New(Registry(), append(base, opts...)...)
}
