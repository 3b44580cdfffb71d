// Package native declares the binary contract of the libsecrethub shared
// library.
//
// # Calling Convention
//
// Every entry point takes its primary arguments first, then an error slot,
// and yields its primary result:
//
//	new_Client(char** errMessage) -> struct Client*
//	Client_Read(struct Client*, char* path, char** errMessage) -> struct SecretVersion
//
// The library reports failure by writing a NUL-terminated message into the
// error slot. A caller must inspect the slot before looking at the primary
// result; when the slot holds a message the result is unspecified.
//
// # Structure Layout
//
// RawSecret and RawSecretVersion declare their fields in the order used by
// the native library. The order is the compatibility contract with the
// native side and is published as SecretFieldOrder and
// SecretVersionFieldOrder.
//
// # Threading
//
// Implementations of Library must be safe for concurrent use on a single
// Handle. Releasing a handle while other calls are in flight is the
// caller's problem; pkg/secrethub.Client serializes release against use.
package native
