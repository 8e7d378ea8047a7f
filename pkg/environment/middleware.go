package environment

import "net/http"

// Middleware attaches env to every request context, so handlers and
// downstream code can branch on the environment without explicit parameter
// passing.
func Middleware(env Environment) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), env)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
