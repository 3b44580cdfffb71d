// Package internalcheck holds static policy tests for the secrethub module.
//
// The tests load the module's packages with golang.org/x/tools/go/packages
// and inspect their syntax. They guard two rules: only internal/bindings may
// touch cgo or unsafe memory, and library code never formats or logs a
// secret value.
//
// # Internal Use Only
//
// This package has no API. It exists so the checks run with go test ./...
package internalcheck
