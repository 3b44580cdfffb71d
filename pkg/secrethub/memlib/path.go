package memlib

import (
	"errors"
	"strings"
)

var errInvalidPath = errors.New("invalid secret path")

// secretPath is namespace/repo[/dir...]/name split into segments.
type secretPath []string

// parsePath splits an optional :version suffix off path and validates the
// remaining segments.
func parsePath(path string) (secretPath, string, error) {
	base, pinned, _ := strings.Cut(path, ":")
	segs := strings.Split(base, "/")
	if len(segs) < 3 {
		return nil, "", errInvalidPath
	}
	for _, s := range segs {
		if s == "" || strings.TrimSpace(s) != s {
			return nil, "", errInvalidPath
		}
	}
	return secretPath(segs), pinned, nil
}

func key(p secretPath) string {
	return strings.ToLower(strings.Join(p, "/"))
}

func (p secretPath) repo() string {
	return strings.ToLower(strings.Join(p[:2], "/"))
}

func (p secretPath) dir() string {
	return strings.ToLower(strings.Join(p[:len(p)-1], "/"))
}

func (p secretPath) name() string {
	return p[len(p)-1]
}
