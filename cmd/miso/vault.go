package main

import (
	"log/slog"

	"github.com/benaskins/miso/internal/audit"
	"github.com/benaskins/miso/internal/index"
	"github.com/benaskins/miso/internal/keychain"
	"github.com/benaskins/miso/internal/vault"
)

// secretBackend is replaced in tests.
var secretBackend = func() keychain.Store {
	return keychain.NewSystemStore()
}

// openVault wires the label index and the secret backend. The returned
// func releases the audit log and is always safe to call.
func openVault(actor string) (*vault.Vault, func()) {
	store := secretBackend()
	closer := func() {}

	if cfg.AuditEnabled() {
		auditLog, err := audit.NewLogger(auditPath())
		if err != nil {
			// Auditing is best-effort.
			slog.Warn("audit log unavailable", "path", auditPath(), "error", err)
		} else {
			store = keychain.NewAuditedStore(store, auditLog, actor)
			closer = func() { auditLog.Close() }
		}
	}

	slog.Debug("opening vault", "index", indexPath())
	return vault.New(index.NewFileStore(indexPath()), store), closer
}
