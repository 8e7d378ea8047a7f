package envbind

import (
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/envbind/pkg/transform"
)

// Decl declares one binding for BindAll and manifest loading.
type Decl struct {
	// ConfigKey is the configuration key the resolved value is stored under.
	ConfigKey string
	// EnvKey is the environment variable the value is read from.
	EnvKey string
	// Default mirrors Options.Default.
	Default any
	// Transform mirrors Options.Transform.
	Transform transform.Spec
}

// Bind declares a binding from envKey to configKey for app and resolves it
// immediately.
//
// The binding is recorded in the registry before resolution, so a failed
// resolution still leaves the binding in place for later reloads. Resolution
// reads the environment variable, falls back to the declared default when
// the variable is absent, applies the transform, and stores the result.
// A missing variable without a default fails with ErrMissingEnvKey;
// malformed values fail with the transform's parse error.
func (b *Binder) Bind(app, configKey, envKey string, opts ...BindOption) error {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	b.reg.save(app, envKey, configKey, o)
	return b.resolve(app, configKey, envKey, o)
}

// BindAll declares and resolves decls in order, stopping at the first
// failure. Declarations resolved before the failure stay applied; there is
// no rollback.
func (b *Binder) BindAll(app string, decls ...Decl) error {
	for _, d := range decls {
		o := Options{Default: d.Default, Transform: d.Transform}
		b.reg.save(app, d.EnvKey, d.ConfigKey, o)
		if err := b.resolve(app, d.ConfigKey, d.EnvKey, o); err != nil {
			return err
		}
	}
	return nil
}

// resolve performs one read-transform-store pass for a single binding.
func (b *Binder) resolve(app, configKey, envKey string, opts Options) error {
	raw, ok := os.LookupEnv(envKey)
	if !ok {
		if opts.Default == nil {
			return errors.Join(ErrMissingEnvKey, fmt.Errorf("application %q, variable %q", app, envKey))
		}

		// String defaults behave exactly like environment values and run
		// through the transform; already-typed defaults are stored as-is.
		s, isString := opts.Default.(string)
		if !isString {
			b.store.Set(app, configKey, opts.Default)
			return nil
		}
		raw = s
	}

	value, err := opts.Transform.Apply(raw)
	if err != nil {
		return err
	}

	b.store.Set(app, configKey, value)
	return nil
}
