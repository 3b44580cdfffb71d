package bindings

import "errors"

// ErrNotBuilt reports that libsecrethub was not linked into the current
// binary. Callers can use this to fall back to a stand-in library.
var ErrNotBuilt = errors.New("secrethub/internal/bindings: native bindings not built")

// Version returns the version string reported by libsecrethub, or empty when
// the library does not export one.
func Version() string { return "" }
