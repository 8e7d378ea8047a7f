package envbind

import "sync"

// bindingKey identifies a binding by application and environment variable.
type bindingKey struct {
	app    string
	envKey string
}

// binding is a registered mapping from an environment variable to a
// configuration key plus its resolution options.
type binding struct {
	configKey string
	opts      Options
}

// registry is the mapping table consulted on reload: one entry per
// (application, environment variable) pair. Saves overwrite silently, so
// re-declaring a binding replaces its options. All access is guarded for
// concurrent declare and reload with last-writer-wins on the same key.
type registry struct {
	mu      sync.RWMutex
	entries map[bindingKey]binding
}

func newRegistry() *registry {
	return &registry{entries: make(map[bindingKey]binding)}
}

func (r *registry) save(app, envKey, configKey string, opts Options) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[bindingKey{app: app, envKey: envKey}] = binding{configKey: configKey, opts: opts}
}

func (r *registry) lookup(app, envKey string) (binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.entries[bindingKey{app: app, envKey: envKey}]
	return b, ok
}
