package main

import (
	"path/filepath"

	"github.com/benaskins/miso/internal/index"
)

// dataDir returns the directory holding the label index and audit log.
func dataDir() string {
	return cfg.ResolveDataDir()
}

func indexPath() string {
	return filepath.Join(dataDir(), index.FileName)
}

func auditPath() string {
	return filepath.Join(dataDir(), "audit.log")
}
