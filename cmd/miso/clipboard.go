package main

import (
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
)

// Replaced in tests.
var (
	clipboardWrite = clipboard.WriteAll
	clipboardRead  = clipboard.ReadAll
	sleep          = time.Sleep
)

// clearClipboardAfter waits d and then empties the clipboard, unless
// something else has been copied in the meantime.
func clearClipboardAfter(d time.Duration, secret string) {
	sleep(d)
	current, err := clipboardRead()
	if err != nil {
		slog.Warn("reading clipboard", "error", err)
		return
	}
	if current != secret {
		return
	}
	if err := clipboardWrite(""); err != nil {
		slog.Warn("clearing clipboard", "error", err)
	}
}
