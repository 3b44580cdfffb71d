package native

// Handle is an opaque identifier for native client state returned by
// new_Client. Zero never identifies a live client.
type Handle uintptr

// Native entry point names. They double as operation labels in errors,
// logs and metrics.
const (
	OpNewClient    = "new_Client"
	OpDeleteClient = "delete_Client"
	OpRead         = "Client_Read"
	OpReadString   = "Client_ReadString"
	OpResolve      = "Client_Resolve"
	OpResolveEnv   = "Client_ResolveEnv"
	OpExists       = "Client_Exists"
	OpRemove       = "Client_Remove"
	OpWrite        = "Client_Write"
)

// ReferencePrefix marks values that Resolve and ResolveEnv replace with the
// secret stored at the remainder of the string.
const ReferencePrefix = "secrethub://"

// ErrorSlot is the out-parameter through which the native library reports
// failure. The zero value means "no error"; allocate a fresh one per call.
type ErrorSlot struct {
	msg string
}

// Set records a failure message. An empty message leaves the slot in the
// "no error" state, matching a NULL or empty char* on the native side.
func (s *ErrorSlot) Set(msg string) {
	s.msg = msg
}

// Err reports the message and whether the call failed.
func (s *ErrorSlot) Err() (string, bool) {
	if s == nil || s.msg == "" {
		return "", false
	}
	return s.msg, true
}

// Library is the set of operations exported by libsecrethub.
type Library interface {
	// NewClient allocates a native client. On failure errOut is set and the
	// returned handle must not be used.
	NewClient(errOut *ErrorSlot) Handle

	// DeleteClient frees everything tied to h. Calling it twice for the same
	// handle is undefined.
	DeleteClient(h Handle)

	// Read returns the latest (or path-selected) version of a secret,
	// including the secret metadata.
	Read(h Handle, path string, errOut *ErrorSlot) RawSecretVersion

	// ReadString returns only the decrypted value of a secret.
	ReadString(h Handle, path string, errOut *ErrorSlot) string

	// Resolve returns the secret value when ref starts with ReferencePrefix
	// and ref itself otherwise.
	Resolve(h Handle, ref string, errOut *ErrorSlot) string

	// ResolveEnv resolves every reference-valued variable in the process
	// environment and returns the full environment as a JSON object of
	// strings.
	ResolveEnv(h Handle, errOut *ErrorSlot) string

	// Exists reports whether a secret is present at path. A missing secret
	// is false, not an error.
	Exists(h Handle, path string, errOut *ErrorSlot) bool

	// Remove deletes the secret at path. Removing an absent secret succeeds.
	Remove(h Handle, path string, errOut *ErrorSlot)

	// Write creates or updates the secret at path.
	Write(h Handle, path, value string, errOut *ErrorSlot)
}
