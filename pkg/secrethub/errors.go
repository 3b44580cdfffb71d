package secrethub

import (
	"errors"

	"github.com/jshobe/secrethub-go/internal/bindings"
	"github.com/jshobe/secrethub-go/pkg/secrethub/native"
)

var (
	// ErrClosed is returned by every operation on a Client after Close.
	ErrClosed = errors.New("secrethub: client has been closed")

	// ErrNotBuilt reports that libsecrethub is not linked into this binary
	// and no Config.Library was supplied.
	ErrNotBuilt = errors.New("secrethub: native library not built")

	// ErrCreateClient matches construction failures reported by new_Client.
	ErrCreateClient = errors.New("secrethub: could not create client")

	// ErrMalformedEnvironment matches EnvironmentError.
	ErrMalformedEnvironment = errors.New("secrethub: malformed environment payload")

	// ErrMalformedSecret reports a secret whose identifiers could not be
	// parsed.
	ErrMalformedSecret = errors.New("secrethub: malformed secret")
)

// NativeError carries a failure message written by libsecrethub into the
// error slot. Error returns the message exactly as the library wrote it.
type NativeError struct {
	Op      string
	Message string
}

func (e *NativeError) Error() string {
	return e.Message
}

// Is lets construction failures match ErrCreateClient.
func (e *NativeError) Is(target error) bool {
	return target == ErrCreateClient && e.Op == native.OpNewClient
}

// EnvironmentError reports that the payload of Client_ResolveEnv was not a
// JSON object of strings. It never wraps a NativeError.
type EnvironmentError struct {
	Err error
}

func (e *EnvironmentError) Error() string {
	return "secrethub: failed to parse environment JSON: " + e.Err.Error()
}

func (e *EnvironmentError) Unwrap() error { return e.Err }

func (e *EnvironmentError) Is(target error) bool {
	return target == ErrMalformedEnvironment
}

// checkSlot applies the error-detection rule to a slot after a native call.
func checkSlot(op string, slot *native.ErrorSlot) error {
	if msg, failed := slot.Err(); failed {
		return &NativeError{Op: op, Message: msg}
	}
	return nil
}

func remapError(err error) error {
	if errors.Is(err, bindings.ErrNotBuilt) {
		return ErrNotBuilt
	}
	return err
}
