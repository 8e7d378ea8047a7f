package envbind

import (
	"log/slog"

	"github.com/dmitrymomot/envbind/pkg/appenv"
)

// Store is the destination for resolved configuration values: a key-value
// store namespaced by application identifier. The appenv package provides
// the default in-memory implementation; hosts may substitute their own.
type Store interface {
	Set(app, key string, value any)
	Get(app, key string) (any, bool)
}

// Binder resolves environment variables into application configuration. It
// owns the mapping registry consulted on reload and writes resolved values
// into its Store. A Binder is safe for concurrent use; individual bindings
// resolve independently with last-writer-wins on overlapping writes.
//
// Most applications use the package-level API backed by the default Binder
// created by Init. Standalone Binders are handy in tests and for embedding.
type Binder struct {
	reg     *registry
	store   Store
	logger  *slog.Logger
	structs *structCache
}

// New returns a Binder with its own registry and, unless WithStore is
// given, a fresh in-memory store.
func New(opts ...Option) *Binder {
	b := &Binder{
		reg:     newRegistry(),
		structs: newStructCache(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.store == nil {
		b.store = appenv.New()
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// Store returns the store resolved values are written to.
func (b *Binder) Store() Store {
	return b.store
}
