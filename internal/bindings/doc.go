// Package bindings hosts the thin cgo layer that links the Go API to the
// native libsecrethub shared library.
//
// All cgo code lives here; no other package imports "C". The real
// implementation is compiled only with cgo and the libsecrethub build tag:
//
//	go build -tags libsecrethub ./...
//
// Every other build links the stub, whose Load reports ErrNotBuilt.
//
// Ownership: strings passed into the library are allocated with C.CString
// and freed after the call returns. Strings the library returns, including
// error messages, are copied into Go memory and freed immediately.
package bindings
