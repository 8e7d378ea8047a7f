package environment

import "context"

type contextKey struct{}

// WithContext adds the environment to the context.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves the environment from the context, or the empty
// Environment when none was set.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsProduction checks if the environment from context is production.
func IsProduction(ctx context.Context) bool {
	env := FromContext(ctx)
	return env == Production || env == "prod"
}

// IsDevelopment checks if the environment from context is development.
func IsDevelopment(ctx context.Context) bool {
	env := FromContext(ctx)
	return env == Development || env == "dev"
}

// IsStaging checks if the environment from context is staging.
func IsStaging(ctx context.Context) bool {
	env := FromContext(ctx)
	return env == Staging || env == "stage"
}
