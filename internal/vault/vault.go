// Package vault keeps the label index and the secret backend in step.
//
// The backend is authoritative for secret values; the index is
// authoritative for which labels exist. Writes are ordered so that a
// partial failure can only ever leave an orphan (a label indexed without
// a secret), never a secret that no listing can reach.
package vault

import (
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/benaskins/miso/internal/index"
	"github.com/benaskins/miso/internal/keychain"
)

// DeleteOutcome reports what Delete did when it did not fail.
type DeleteOutcome int

const (
	// DeleteRemoved means the label was removed from both stores.
	DeleteRemoved DeleteOutcome = iota
	// DeleteAbsent means the label was not indexed; nothing was touched.
	DeleteAbsent
)

// Vault mediates every operation across the index and the secret backend.
type Vault struct {
	index   index.Store
	secrets keychain.Store
	logger  *slog.Logger
}

// New creates a Vault over the given index and secret backend.
func New(idx index.Store, secrets keychain.Store) *Vault {
	return &Vault{
		index:   idx,
		secrets: secrets,
		logger:  slog.With("component", "vault"),
	}
}

// Create stores secret under label. An indexed label is rejected with
// ErrAlreadyExists unless force is set, in which case its secret is
// overwritten in place.
func (v *Vault) Create(label, secret string, force bool) error {
	labels, err := v.load()
	if err != nil {
		return err
	}

	if slices.Contains(labels, label) {
		if !force {
			return newError(KindAlreadyExists, label, nil)
		}
		v.logger.Debug("overwriting existing label", "label", label)
	} else {
		// Index first: if the secret write fails we are left with an orphan
		// that Get reports as missing and a forced Create repairs.
		if err := v.save(append(labels, label)); err != nil {
			return err
		}
	}

	if err := v.secrets.Set(label, secret); err != nil {
		v.logger.Warn("secret write failed, label left in index", "label", label, "error", err)
		return newError(KindBackendWriteFailed, label, err)
	}
	v.logger.Debug("secret stored", "label", label)
	return nil
}

// Get returns the secret stored under label. The index is not consulted.
func (v *Vault) Get(label string) (string, error) {
	secret, err := v.secrets.Get(label)
	if err != nil {
		if !errors.Is(err, keychain.ErrNotFound) {
			v.logger.Debug("backend read failed", "label", label, "error", err)
		}
		return "", newError(KindNotFound, label, err)
	}
	return secret, nil
}

// List returns every indexed label in stored order.
func (v *Vault) List() ([]string, error) {
	return v.load()
}

// Search returns the indexed labels containing query, ignoring case, in
// stored order. An empty query matches every label.
func (v *Vault) Search(query string) ([]string, error) {
	labels, err := v.load()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	matches := make([]string, 0, len(labels))
	for _, l := range labels {
		if strings.Contains(strings.ToLower(l), q) {
			matches = append(matches, l)
		}
	}
	return matches, nil
}

// Delete removes label from the backend and then from the index. A label
// that is not indexed yields DeleteAbsent and no error. If the backend
// refuses, the label stays indexed so the delete can be retried.
func (v *Vault) Delete(label string) (DeleteOutcome, error) {
	labels, err := v.load()
	if err != nil {
		return 0, err
	}

	i := slices.Index(labels, label)
	if i < 0 {
		return DeleteAbsent, nil
	}

	if err := v.secrets.Delete(label); err != nil {
		v.logger.Warn("secret delete failed, label kept in index", "label", label, "error", err)
		return 0, newError(KindBackendDeleteFailed, label, err)
	}

	if err := v.save(slices.Delete(labels, i, i+1)); err != nil {
		return 0, err
	}
	v.logger.Debug("label deleted", "label", label)
	return DeleteRemoved, nil
}

func (v *Vault) load() ([]string, error) {
	labels, err := v.index.Load()
	if err != nil {
		return nil, newError(KindIndexCorrupt, "", err)
	}
	return labels, nil
}

func (v *Vault) save(labels []string) error {
	if err := v.index.Save(labels); err != nil {
		return newError(KindIndexWriteFailed, "", err)
	}
	return nil
}
