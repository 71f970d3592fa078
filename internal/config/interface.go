package config

import (
	"context"
)

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads manifests from the given paths, translates them into the
	// format-agnostic model, and returns a matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter is the interface for format-specific data binding. It is the
// bridge between manifest-declared values and the Go structs plugins read
// their configuration from.
type Converter interface {
	// ApplyDefaults populates a plugin's config struct (exported fields
	// tagged `plug:"..."`) from the manifest's declared defaults.
	ApplyDefaults(ctx context.Context, configStruct any, attrs map[string]*ConfigAttr) error
}
