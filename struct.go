package envbind

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
)

// structCache caches parsed configuration structs per application and
// struct type, so each typed section is parsed from the environment at most
// once per Binder lifetime.
type structCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

func newStructCache() *structCache {
	return &structCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

// LoadStructInto parses environment variables into v based on its `env`
// field tags and stores the populated struct in b's store for app under the
// struct's type name. Each (application, struct type) pair is parsed once
// per Binder; later calls return the cached copy even if the environment
// changed in between. Struct sections are startup-time configuration: they
// register no per-variable bindings and Reload does not re-resolve them.
func LoadStructInto[T any](b *Binder, app string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	name := typeName[T]()
	cacheKey := app + "/" + name
	cache := b.structs

	cache.mu.RLock()
	if cached, ok := cache.values[cacheKey]; ok {
		*v = cached.(T)
		cache.mu.RUnlock()
		return nil
	}
	cache.mu.RUnlock()

	cache.mu.Lock()
	once, exists := cache.onces[cacheKey]
	if !exists {
		once = new(sync.Once)
		cache.onces[cacheKey] = once
	}
	cache.mu.Unlock()

	var err error

	// The parse work runs at most once per (application, type) pair even
	// under concurrent callers.
	once.Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingStruct, parseErr)
			return
		}

		cache.mu.Lock()
		cache.values[cacheKey] = *v // Store a copy to avoid external modifications
		cache.mu.Unlock()

		b.store.Set(app, name, *v)
	})

	if err != nil {
		return err
	}

	// Serve concurrent callers from the cache once the winner finished.
	cache.mu.RLock()
	if cached, ok := cache.values[cacheKey]; ok {
		*v = cached.(T)
		cache.mu.RUnlock()
		return nil
	}
	cache.mu.RUnlock()

	return ErrStructNotLoaded
}

// LoadStruct is LoadStructInto on the default Binder.
func LoadStruct[T any](app string, v *T) error {
	b := Default()
	if b == nil {
		return ErrNotInitialized
	}
	return LoadStructInto(b, app, v)
}

// MustLoadStruct works like LoadStruct but panics when loading fails. This
// is useful for configuration sections the application cannot start
// without.
func MustLoadStruct[T any](app string, v *T) {
	if err := LoadStruct(app, v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration struct: %v", err))
	}
}

// typeName returns a string identifier for the generic type T.
func typeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// Handle interface types
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
