package main

import (
	"errors"
	"fmt"

	"github.com/benaskins/miso/internal/vault"
	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// errorMessage turns an error into the line printed before exiting.
func errorMessage(err error) string {
	var verr *vault.Error
	if !errors.As(err, &verr) {
		return err.Error()
	}

	switch verr.Kind {
	case vault.KindAlreadyExists:
		return fmt.Sprintf("Password for '%s' already exists. Use --force to overwrite.", verr.Label)
	case vault.KindNotFound:
		return fmt.Sprintf("No password found for '%s'.", verr.Label)
	case vault.KindIndexCorrupt:
		return fmt.Sprintf("Label index at %s could not be read (%v). Fix or move the file aside; it is never repaired automatically.", indexPath(), verr.Err)
	case vault.KindIndexWriteFailed:
		return fmt.Sprintf("Could not save the label index at %s: %v", indexPath(), verr.Err)
	case vault.KindBackendWriteFailed:
		return fmt.Sprintf("Could not store password for '%s': %v. The label is indexed; run 'miso create --force %s' to retry.", verr.Label, verr.Err, verr.Label)
	case vault.KindBackendDeleteFailed:
		return fmt.Sprintf("Failed to delete password for '%s': %v. The label is kept so the delete can be retried.", verr.Label, verr.Err)
	default:
		return err.Error()
	}
}
