// Package appenv provides an in-memory, per-application configuration store.
//
// The store is the destination for resolved configuration values: a two-level
// map from application identifier to configuration key to value. It ships as
// the default backing store for the envbind root package, but is usable on
// its own wherever several components of a process need isolated key-value
// configuration namespaces.
//
// # Usage
//
//	store := appenv.New()
//	store.Set("billing", "pool_size", 10)
//
//	v, ok := store.Get("billing", "pool_size") // 10, true
//	v = store.GetOr("billing", "timeout", "30s") // "30s" fallback
//
// Applications are isolated from each other: keys set for one application
// identifier are invisible to every other.
//
// # Thread Safety
//
// All operations are guarded by a single read-write mutex. Single-key reads
// and writes are atomic with last-writer-wins semantics; Keys and Snapshot
// copy under the read lock so callers can iterate without holding any lock.
// The store provides no cross-key transactional guarantees.
package appenv
