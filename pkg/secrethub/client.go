package secrethub

import (
	"context"
	"sync"
	"time"

	"github.com/jshobe/secrethub-go/internal/bindings"
	"github.com/jshobe/secrethub-go/pkg/secrethub/logging"
	"github.com/jshobe/secrethub-go/pkg/secrethub/native"
)

// Client owns one native client handle. It is safe for concurrent use; Close
// waits for in-flight calls and then releases the handle exactly once.
//
// Operations are blocking round-trips into the native library. They are not
// cancellable and are never retried here.
type Client struct {
	lib      native.Library
	log      logging.Logger
	observer Observer

	// mu is held shared for the duration of each native call and exclusively
	// by Close, so no call ever sees a handle that is being released.
	mu     sync.RWMutex
	handle native.Handle
	open   bool
}

// New opens a Client backed by the linked libsecrethub.
func New() (*Client, error) {
	return Open(Config{})
}

// Open creates the native client described by cfg. When new_Client reports
// an error, Open returns it as a *NativeError matching ErrCreateClient and no
// handle is retained.
func Open(cfg Config) (*Client, error) {
	lib := cfg.Library
	if lib == nil {
		l, err := bindings.Load()
		if err != nil {
			return nil, remapError(err)
		}
		lib = l
	}

	log := cfg.logger()
	obs := cfg.observer()

	var slot native.ErrorSlot
	start := time.Now()
	h := lib.NewClient(&slot)
	err := checkSlot(native.OpNewClient, &slot)
	obs.ObserveCall(native.OpNewClient, time.Since(start), err)
	if err != nil {
		log.Error(context.Background(), "secrethub client creation failed", "error", err)
		return nil, err
	}

	log.Info(context.Background(), "secrethub client opened")
	return &Client{
		lib:      lib,
		log:      log,
		observer: obs,
		handle:   h,
		open:     true,
	}, nil
}

// call runs one native operation under the per-operation protocol: reject
// when closed, hand a fresh error slot to fn, and discard fn's result when
// the slot reports a failure.
func call[T any](c *Client, op, path string, fn func(h native.Handle, errOut *native.ErrorSlot) T) (T, error) {
	var zero T
	if c == nil {
		return zero, ErrClosed
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.open {
		c.observer.ObserveCall(op, 0, ErrClosed)
		return zero, ErrClosed
	}

	var slot native.ErrorSlot
	start := time.Now()
	out := fn(c.handle, &slot)
	err := checkSlot(op, &slot)
	c.observer.ObserveCall(op, time.Since(start), err)
	if err != nil {
		c.log.Debug(context.Background(), "secrethub call failed", "op", op, "path", path, "error", err)
		return zero, err
	}
	return out, nil
}

// Read retrieves a secret version, including its secret metadata, by path.
func (c *Client) Read(path string) (*SecretVersion, error) {
	raw, err := call(c, native.OpRead, path, func(h native.Handle, errOut *native.ErrorSlot) native.RawSecretVersion {
		return c.lib.Read(h, path, errOut)
	})
	if err != nil {
		return nil, err
	}
	return newSecretVersion(raw)
}

// ReadString retrieves only the value of the secret at path.
func (c *Client) ReadString(path string) (string, error) {
	return call(c, native.OpReadString, path, func(h native.Handle, errOut *native.ErrorSlot) string {
		return c.lib.ReadString(h, path, errOut)
	})
}

// Resolve returns the secret value when ref has the form secrethub://<path>
// and ref unchanged otherwise. The decision is made by the native library.
func (c *Client) Resolve(ref string) (string, error) {
	return call(c, native.OpResolve, ref, func(h native.Handle, errOut *native.ErrorSlot) string {
		return c.lib.Resolve(h, ref, errOut)
	})
}

// ResolveEnv returns the process environment with every secret reference
// replaced by its value. A payload that is not a JSON object of strings
// yields an *EnvironmentError.
func (c *Client) ResolveEnv() (map[string]string, error) {
	payload, err := call(c, native.OpResolveEnv, "", func(h native.Handle, errOut *native.ErrorSlot) string {
		return c.lib.ResolveEnv(h, errOut)
	})
	if err != nil {
		return nil, err
	}
	return decodeEnvironment(payload)
}

// Exists reports whether a secret is present at path. A missing secret is
// false with a nil error.
func (c *Client) Exists(path string) (bool, error) {
	return call(c, native.OpExists, path, func(h native.Handle, errOut *native.ErrorSlot) bool {
		return c.lib.Exists(h, path, errOut)
	})
}

// Remove deletes the secret at path if it exists.
func (c *Client) Remove(path string) error {
	_, err := call(c, native.OpRemove, path, func(h native.Handle, errOut *native.ErrorSlot) struct{} {
		c.lib.Remove(h, path, errOut)
		return struct{}{}
	})
	return err
}

// Write stores value as the new version of the secret at path.
func (c *Client) Write(path, value string) error {
	_, err := call(c, native.OpWrite, path, func(h native.Handle, errOut *native.ErrorSlot) struct{} {
		c.lib.Write(h, path, value, errOut)
		return struct{}{}
	})
	if err == nil {
		c.log.Debug(context.Background(), "secret written", "path", path, logging.Redacted("value"))
	}
	return err
}

// Close releases the native handle. It blocks until in-flight calls return.
// Calling Close more than once is a no-op.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return nil
	}

	start := time.Now()
	c.lib.DeleteClient(c.handle)
	c.observer.ObserveCall(native.OpDeleteClient, time.Since(start), nil)
	c.handle = 0
	c.open = false

	c.log.Info(context.Background(), "secrethub client closed")
	return nil
}
