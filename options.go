package envbind

import (
	"log/slog"

	"github.com/dmitrymomot/envbind/pkg/transform"
)

// Option configures a Binder.
type Option func(*Binder)

// WithStore sets the destination store for resolved configuration values.
// Defaults to a fresh appenv store.
func WithStore(s Store) Option {
	if s == nil {
		panic("WithStore: nil store")
	}
	return func(b *Binder) { b.store = s }
}

// WithLogger supplies the logger used for reload and parse diagnostics.
// Nil loggers are ignored; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Binder) {
		if l != nil {
			b.logger = l
		}
	}
}

// Options control how a single binding resolves.
type Options struct {
	// Default is used when the environment variable is absent. A nil
	// Default means the binding is required and resolution fails when the
	// variable is unset. String defaults pass through the transform just
	// like environment values; any other type is stored as-is.
	Default any

	// Transform converts the raw string into the stored value. The zero
	// Spec stores the string unchanged.
	Transform transform.Spec
}

// BindOption configures a single Bind call.
type BindOption func(*Options)

// WithDefault sets the fallback value used when the environment variable is
// absent.
func WithDefault(v any) BindOption {
	return func(o *Options) { o.Default = v }
}

// WithTransform sets the transform applied to the resolved raw value.
func WithTransform(spec transform.Spec) BindOption {
	return func(o *Options) { o.Transform = spec }
}

// WithTransformFunc is shorthand for WithTransform(transform.Fn(f)).
func WithTransformFunc(f transform.Func) BindOption {
	if f == nil {
		panic("WithTransformFunc: nil function")
	}
	return func(o *Options) { o.Transform = transform.Fn(f) }
}
