//go:build !darwin

package keychain

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// SystemStore stores secrets in the platform credential manager: the
// Secret Service over D-Bus on Linux and BSD, Credential Manager on Windows.
type SystemStore struct {
	service string
}

// NewSystemStore creates a new credential-manager-backed secret store.
func NewSystemStore() *SystemStore {
	return &SystemStore{service: ServiceName}
}

// Set stores a secret, overwriting any existing value for the label.
func (s *SystemStore) Set(label, secret string) error {
	if err := keyring.Set(s.service, label, secret); err != nil {
		return fmt.Errorf("keyring set %q: %w", label, err)
	}
	return nil
}

// Get retrieves a secret.
func (s *SystemStore) Get(label string) (string, error) {
	val, err := keyring.Get(s.service, label)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, label)
		}
		return "", fmt.Errorf("keyring get %q: %w", label, err)
	}
	return val, nil
}

// Delete removes a secret. Deleting a missing item is not an error.
func (s *SystemStore) Delete(label string) error {
	err := keyring.Delete(s.service, label)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete %q: %w", label, err)
	}
	return nil
}
