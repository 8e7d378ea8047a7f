package environment

import (
	"log/slog"
	"os"
	"strings"
)

// Environment represents the application runtime environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// DefaultVars are the environment variables Detect probes, in order.
var DefaultVars = []string{"APP_ENV", "GO_ENV", "ENVIRONMENT"}

// Parse normalizes a raw environment name. Common short forms map to the
// canonical constants, the empty string maps to Development, and anything
// else is kept as a custom environment in lowercase.
func Parse(s string) Environment {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	case "development", "dev", "":
		return Development
	default:
		return Environment(v)
	}
}

// Detect resolves the current environment from the first non-empty variable
// among vars, falling back to DefaultVars when none are given and to
// Development when nothing is set.
func Detect(vars ...string) Environment {
	if len(vars) == 0 {
		vars = DefaultVars
	}
	for _, name := range vars {
		if v, ok := os.LookupEnv(name); ok && strings.TrimSpace(v) != "" {
			return Parse(v)
		}
	}
	return Development
}

// Transform adapts Parse to the transform function shape used by binding
// declarations, so an environment name binds as a typed Environment value.
// It never fails: unrecognized names become custom environments.
func Transform(raw string) (any, error) {
	return Parse(raw), nil
}

// LogValue implements slog.LogValuer.
func (e Environment) LogValue() slog.Value {
	return slog.StringValue(string(e))
}
