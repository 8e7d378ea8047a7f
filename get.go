package envbind

import (
	"errors"
	"fmt"
)

// Get returns the configuration value stored under (app, configKey). It
// fails with ErrMissingConfig when no value has been set, which means the
// key was never bound, or was bound without a default while its environment
// variable was absent.
func (b *Binder) Get(app, configKey string) (any, error) {
	v, ok := b.store.Get(app, configKey)
	if !ok {
		return nil, errors.Join(ErrMissingConfig, fmt.Errorf("application %q, key %q", app, configKey))
	}
	return v, nil
}

// GetOr returns the configuration value stored under (app, configKey), or
// fallback when the key is not set. It never fails.
func (b *Binder) GetOr(app, configKey string, fallback any) any {
	if v, ok := b.store.Get(app, configKey); ok {
		return v
	}
	return fallback
}

// MustGet works like Get but panics when the key is not set. Useful for
// configuration the application cannot start without.
func (b *Binder) MustGet(app, configKey string) any {
	v, err := b.Get(app, configKey)
	if err != nil {
		panic(fmt.Sprintf("required configuration missing: %v", err))
	}
	return v
}
