package envbind

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
)

var (
	defaultMu     sync.RWMutex
	defaultBinder *Binder
)

// Init creates the process-wide default Binder used by the package-level
// functions. It must be called exactly once, before any other package-level
// call; a second call returns ErrAlreadyInitialized and leaves the existing
// Binder untouched. Applications that need isolated binders (tests,
// embedded tooling) should use New instead.
func Init(opts ...Option) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultBinder != nil {
		return ErrAlreadyInitialized
	}

	defaultBinder = New(opts...)
	return nil
}

// Default returns the process-wide Binder created by Init, or nil when Init
// has not been called yet.
func Default() *Binder {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultBinder
}

// Bind registers and resolves a binding on the default Binder.
func Bind(app, configKey, envKey string, opts ...BindOption) error {
	b := Default()
	if b == nil {
		return ErrNotInitialized
	}
	return b.Bind(app, configKey, envKey, opts...)
}

// BindAll registers and resolves a batch of bindings on the default Binder.
func BindAll(app string, decls ...Decl) error {
	b := Default()
	if b == nil {
		return ErrNotInitialized
	}
	return b.BindAll(app, decls...)
}

// Get returns the configuration value stored for app under configKey on the
// default Binder.
func Get(app, configKey string) (any, error) {
	b := Default()
	if b == nil {
		return nil, ErrNotInitialized
	}
	return b.Get(app, configKey)
}

// GetOr returns the configuration value stored for app under configKey on
// the default Binder, or fallback when the key is absent or Init has not
// been called.
func GetOr(app, configKey string, fallback any) any {
	b := Default()
	if b == nil {
		return fallback
	}
	return b.GetOr(app, configKey, fallback)
}

// MustGet works like Get but panics when the value is missing. Use it for
// configuration the application cannot run without.
func MustGet(app, configKey string) any {
	b := Default()
	if b == nil {
		panic(fmt.Sprintf("required configuration missing: %v", ErrNotInitialized))
	}
	return b.MustGet(app, configKey)
}

// GetAs returns the configuration value stored for app under configKey,
// asserted to type T. It fails with ErrTypeMismatch when the stored value
// has a different dynamic type.
func GetAs[T any](app, configKey string) (T, error) {
	var zero T

	b := Default()
	if b == nil {
		return zero, ErrNotInitialized
	}

	v, err := b.Get(app, configKey)
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, errors.Join(ErrTypeMismatch, fmt.Errorf("application %q, key %q holds %T", app, configKey, v))
	}
	return typed, nil
}

// Reload re-resolves bindings for app from an environment file on the
// default Binder.
func Reload(app, path string) error {
	b := Default()
	if b == nil {
		return ErrNotInitialized
	}
	return b.Reload(app, path)
}

// ReloadFS is Reload reading from an fs.FS.
func ReloadFS(app string, fsys fs.FS, name string) error {
	b := Default()
	if b == nil {
		return ErrNotInitialized
	}
	return b.ReloadFS(app, fsys, name)
}

// ReloadDotenv re-resolves bindings for app from a dotenv file on the
// default Binder.
func ReloadDotenv(app, path string) error {
	b := Default()
	if b == nil {
		return ErrNotInitialized
	}
	return b.ReloadDotenv(app, path)
}

// BindManifest registers and resolves bindings declared in a YAML manifest
// on the default Binder.
func BindManifest(app, path string) error {
	b := Default()
	if b == nil {
		return ErrNotInitialized
	}
	return b.BindManifest(app, path)
}
