// Package environment resolves the current application environment
// (development, staging, production, or a custom name) from environment
// variables and propagates it through context.Context, HTTP requests and
// structured logs.
//
// It defines the typed string Environment with predefined constants
// Development, Staging and Production. Detect probes a list of well-known
// variables (APP_ENV, GO_ENV, ENVIRONMENT by default) and Parse normalizes
// short forms like "prod" and "stage" to the canonical constants. Values can
// be attached to a context using WithContext, extracted with FromContext and
// queried with the convenience predicates IsDevelopment, IsStaging and
// IsProduction.
//
// In HTTP servers the Middleware function sets the desired environment on
// every request's context, making it available across the request-handling
// pipeline and to any downstream code that consumes the context.
//
// # Usage
//
// Import the package:
//
//	import "github.com/dmitrymomot/envbind/pkg/environment"
//
// Detect the environment once at startup:
//
//	env := environment.Detect()
//	if env == environment.Production {
//	    // production-specific behaviour
//	}
//
// Bind it like any other configuration value:
//
//	err := b.Bind("api", "environment", "APP_ENV",
//	    envbind.WithDefault("development"),
//	    envbind.WithTransformFunc(environment.Transform),
//	)
//
// Set the environment on an HTTP server:
//
//	mux := http.NewServeMux()
//	mux.Handle("/", handler)
//	envAwareMux := environment.Middleware(environment.Production)(mux)
//	http.ListenAndServe(":8080", envAwareMux)
//
// Environment implements slog.LogValuer, so it renders as its plain name in
// structured logs:
//
//	logger.Info("starting", "env", environment.Detect())
//
// # Error Handling
//
// All helpers are designed to be allocation-free and never return errors.
// Missing values simply result in the zero value ("") from FromContext and
// in Development from Detect.
//
// See the function-level documentation for further details.
package environment
