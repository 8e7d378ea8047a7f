// Package envbind maps environment variables onto named configuration keys
// for one or more applications sharing a process.
//
// Each binding ties an `(application, environment key)` pair to a
// configuration key, an optional default, and an optional value transform.
// Binding a declaration immediately resolves it: the environment variable is
// read (or the default applied), the transform converts the raw string, and
// the result lands in a concurrent-safe configuration store. Bindings stay
// registered afterwards so they can be re-resolved when an environment file
// changes on disk.
//
// The package offers:
//
//   - Single and batch binding with defaults and transforms (`Bind`,
//     `BindAll`).
//   - Typed value transforms for integers, floats, byte slices, symbolic
//     atoms and arbitrary functions (see the `transform` subpackage).
//   - Reload of all mapped variables from an `export KEY='VALUE'` style
//     environment file or a dotenv file (`Reload`, `ReloadFS`,
//     `ReloadDotenv`).
//   - Declarative binding manifests in YAML (`BindManifest`).
//   - Struct-based configuration sections parsed via
//     `github.com/caarlos0/env/v11` field tags (`LoadStruct`,
//     `LoadStructInto`).
//   - Lookup helpers with error, fallback and panic flavors (`Get`, `GetOr`,
//     `MustGet`, `GetAs`).
//
// # Architecture
//
// A `Binder` owns three pieces: a registry of binding declarations keyed by
// `(application, environment key)`, a `Store` holding resolved configuration
// values, and a `*slog.Logger` for reload diagnostics. The registry and the
// default store (`pkg/appenv`) are guarded by `sync.RWMutex`, so bindings
// may be registered, resolved and read from multiple goroutines.
//
// Most programs use the process-wide default Binder created by `Init` and
// the package-level functions that mirror its methods. `Init` must run
// exactly once; a second call returns `ErrAlreadyInitialized`. Code that
// needs isolation, such as tests, constructs private binders with `New`.
//
// Environment files are parsed by the `pkg/envfile` subpackage, which
// recognizes `export KEY='VALUE'` lines, reports every line it skips, and
// preserves file order.
//
// # Usage
//
// Initialize the default Binder once at startup, then declare bindings:
//
//	import (
//	    "github.com/dmitrymomot/envbind"
//	    "github.com/dmitrymomot/envbind/pkg/transform"
//	)
//
//	func main() {
//	    if err := envbind.Init(); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    err := envbind.BindAll("billing",
//	        envbind.Decl{ConfigKey: "db_url", EnvKey: "DATABASE_URL"},
//	        envbind.Decl{ConfigKey: "pool_size", EnvKey: "DB_POOL_SIZE", Default: "10", Transform: transform.Int},
//	        envbind.Decl{ConfigKey: "mode", EnvKey: "BILLING_MODE", Default: transform.Atom("sandbox"), Transform: transform.Symbol},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    size, err := envbind.GetAs[int]("billing", "pool_size")
//	    ...
//	}
//
// When the deployment rewrites the environment file, re-resolve every mapped
// variable in one call:
//
//	if err := envbind.Reload("billing", "/etc/billing/env"); err != nil {
//	    log.Printf("reload failed: %v", err)
//	}
//
// Reload updates the process environment via `os.Setenv` before
// re-resolving, so plain `os.Getenv` callers observe the new values too.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrAlreadyInitialized` – `Init` was called twice.
//   - `ErrNotInitialized`     – package-level call before `Init`.
//   - `ErrMissingEnvKey`      – variable unset and no default declared.
//   - `ErrMissingConfig`      – `Get` on a key that was never stored.
//   - `ErrTypeMismatch`       – `GetAs` on a value of another type.
//   - `ErrManifestRead`, `ErrManifestParse`, `ErrManifestInvalid` – YAML
//     manifest failures.
//   - `ErrNilPointer`, `ErrParsingStruct`, `ErrStructNotLoaded` – struct
//     section failures.
//
// Transform failures surface the underlying conversion error unchanged, so
// callers can inspect `*strconv.NumError` and friends directly. File access
// failures from `Reload` are likewise returned as-is.
//
// # See Also
//
//   - https://github.com/caarlos0/env – struct section parser.
//   - https://github.com/joho/godotenv – dotenv loader.
package envbind
