//go:build !cgo || !libsecrethub || windows

package bindings

import "github.com/jshobe/secrethub-go/pkg/secrethub/native"

// Load reports ErrNotBuilt. This file is compiled whenever cgo is off, the
// libsecrethub tag is absent, or the target is Windows.
func Load() (native.Library, error) {
	return nil, ErrNotBuilt
}
