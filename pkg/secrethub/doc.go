// Package secrethub exposes the SecretHub client implemented by the native
// libsecrethub shared library.
//
// A Client owns one native handle from Open until Close:
//
//	c, err := secrethub.New()
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	value, err := c.ReadString("workspace/repo/db/password")
//
// Failures reported by the library surface as *NativeError with the
// library's message unchanged. Operations after Close return ErrClosed.
// Binaries built without cgo return ErrNotBuilt from New; pass a
// Config.Library (for example memlib.New()) to run without libsecrethub.
package secrethub
