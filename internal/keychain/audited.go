package keychain

import (
	"fmt"

	"github.com/benaskins/miso/internal/audit"
)

// AuditedStore wraps a Store and records every access in the audit log.
type AuditedStore struct {
	inner Store
	audit *audit.Logger
	actor string // "cli" or "check"
}

// NewAuditedStore wraps an existing store with audit logging.
func NewAuditedStore(inner Store, auditLog *audit.Logger, actor string) *AuditedStore {
	return &AuditedStore{
		inner: inner,
		audit: auditLog,
		actor: actor,
	}
}

func (s *AuditedStore) Set(label, secret string) error {
	err := s.inner.Set(label, secret)
	s.record(audit.ActionSecretWrite, label, err)
	if err != nil {
		return fmt.Errorf("audited store set: %w", err)
	}
	return nil
}

func (s *AuditedStore) Get(label string) (string, error) {
	val, err := s.inner.Get(label)
	s.record(audit.ActionSecretRead, label, err)
	if err != nil {
		return "", fmt.Errorf("audited store get: %w", err)
	}
	return val, nil
}

func (s *AuditedStore) Delete(label string) error {
	err := s.inner.Delete(label)
	s.record(audit.ActionSecretDelete, label, err)
	if err != nil {
		return fmt.Errorf("audited store delete: %w", err)
	}
	return nil
}

// record is best-effort: a failure to log never blocks the operation.
func (s *AuditedStore) record(action audit.Action, label string, opErr error) {
	entry := audit.Entry{
		Action: action,
		Label:  label,
		Actor:  s.actor,
	}
	if opErr != nil {
		entry.Error = opErr.Error()
	}
	_ = s.audit.Log(entry)
}
