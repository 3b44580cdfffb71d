package secrethub

import (
	"time"

	"github.com/jshobe/secrethub-go/pkg/secrethub/logging"
	"github.com/jshobe/secrethub-go/pkg/secrethub/native"
)

// Config expresses the knobs for opening a Client. The zero value links the
// cgo-backed libsecrethub and logs nothing.
type Config struct {
	// Library overrides the native library. Leave nil to use libsecrethub;
	// tests and tools pass a stand-in such as memlib.New().
	Library native.Library

	// Logger receives lifecycle and failure events. Nil discards them.
	Logger logging.Logger

	// Observer is notified after every native call.
	Observer Observer
}

// Observer receives the outcome of each native call. Implementations must be
// safe for concurrent use; see the metrics package for a Prometheus one.
type Observer interface {
	ObserveCall(op string, elapsed time.Duration, err error)
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}

type nopObserver struct{}

func (nopObserver) ObserveCall(string, time.Duration, error) {}

func (c Config) observer() Observer {
	if c.Observer == nil {
		return nopObserver{}
	}
	return c.Observer
}
