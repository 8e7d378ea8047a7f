package envbind

import "errors"

// Package-specific errors
var (
	// Initialization
	ErrAlreadyInitialized = errors.New("default binder already initialized")
	ErrNotInitialized     = errors.New("default binder not initialized: call Init first")

	// Binding resolution
	ErrMissingEnvKey = errors.New("missing environment variable for binding")

	// Configuration reads
	ErrMissingConfig = errors.New("configuration key not set")
	ErrTypeMismatch  = errors.New("configuration value type mismatch")

	// Binding manifests
	ErrManifestRead    = errors.New("failed to read binding manifest")
	ErrManifestParse   = errors.New("failed to parse binding manifest")
	ErrManifestInvalid = errors.New("invalid binding manifest")

	// Struct loading
	ErrNilPointer      = errors.New("nil pointer provided to struct loader")
	ErrParsingStruct   = errors.New("failed to parse environment variables into struct")
	ErrStructNotLoaded = errors.New("struct configuration has not been loaded")
)
