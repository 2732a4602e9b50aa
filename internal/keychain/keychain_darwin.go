//go:build darwin

package keychain

import (
	"errors"
	"fmt"

	gokeychain "github.com/keybase/go-keychain"
)

// SystemStore provides CRUD operations for secrets in macOS Keychain.
//
// Items are scoped with kSecAttrAccessibleWhenUnlockedThisDeviceOnly:
// never synced to iCloud, never available when the machine is locked.
type SystemStore struct {
	service string
}

// NewSystemStore creates a new Keychain-backed secret store.
func NewSystemStore() *SystemStore {
	return &SystemStore{service: ServiceName}
}

// Set stores a secret in the Keychain. Overwrites if it already exists.
func (s *SystemStore) Set(label, secret string) error {
	// Update = delete + add
	_ = s.Delete(label)

	item := gokeychain.NewGenericPassword(
		s.service,
		label,
		fmt.Sprintf("miso: %s", label),
		[]byte(secret),
		"",
	)
	item.SetSynchronizable(gokeychain.SynchronizableNo)
	item.SetAccessible(gokeychain.AccessibleWhenUnlockedThisDeviceOnly)

	if err := gokeychain.AddItem(item); err != nil {
		return fmt.Errorf("keychain add %q: %w", label, err)
	}
	return nil
}

// Get retrieves a secret from the Keychain.
func (s *SystemStore) Get(label string) (string, error) {
	data, err := gokeychain.GetGenericPassword(s.service, label, "", "")
	if err != nil {
		if errors.Is(err, gokeychain.ErrorItemNotFound) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, label)
		}
		return "", fmt.Errorf("keychain get %q: %w", label, err)
	}
	// A missing item comes back as nil data with no error.
	if data == nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, label)
	}
	return string(data), nil
}

// Delete removes a secret from the Keychain. Deleting a missing item is not an error.
func (s *SystemStore) Delete(label string) error {
	err := gokeychain.DeleteGenericPasswordItem(s.service, label)
	if err != nil && !errors.Is(err, gokeychain.ErrorItemNotFound) {
		return fmt.Errorf("keychain delete %q: %w", label, err)
	}
	return nil
}
