package secrethub

import "github.com/jshobe/secrethub-go/internal/bindings"

var (
	Version         = "v0.0.0-in-progress"
	UpstreamVersion = "unknown"
	UpstreamLibrary = "libsecrethub"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// LibraryVersion returns the version string reported by libsecrethub if
// available; otherwise it falls back to the pinned upstream version.
func LibraryVersion() string {
	if v := bindings.Version(); v != "" {
		return v
	}
	return UpstreamVersion
}
