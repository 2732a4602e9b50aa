// Package keychain provides secret storage backed by the OS credential manager.
//
// Secrets are stored as generic passwords with:
//   - Service: "miso" (all miso secrets share this service)
//   - Account: the label (e.g. "github")
//
// The backend has no enumeration: callers that need to list labels keep
// their own index (see package index).
package keychain

import "errors"

// ServiceName namespaces every miso entry in the OS credential manager.
const ServiceName = "miso"

// ErrNotFound is returned when a secret does not exist in the store.
var ErrNotFound = errors.New("secret not found")

// Store is the interface for secret storage operations.
type Store interface {
	Set(label, secret string) error
	Get(label string) (string, error)
	Delete(label string) error
}
