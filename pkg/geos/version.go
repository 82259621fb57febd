package geos

import "github.com/spatialkit/geos-go/pkg/geos/internal/backend"

var (
	Version = "v0.0.0-in-progress"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// EngineVersion returns the version string reported by the native engine,
// for example "3.12.1-CAPI-1.18.1". It returns the empty string when the
// binary was built without the engine.
func EngineVersion() string {
	return backend.Version()
}

// Available reports whether the native engine is linked into this binary.
// When false, every operation fails with ErrNotBuilt.
func Available() bool {
	return backend.Version() != ""
}
