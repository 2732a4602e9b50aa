// Package index persists the ordered set of known labels.
//
// The OS credential manager cannot enumerate entries, so every label that
// miso stores a secret under is also recorded here. The index holds labels
// only, never secret material.
package index

import "errors"

var (
	// ErrCorrupt is returned when a persisted index cannot be read back as a
	// list of labels.
	ErrCorrupt = errors.New("label index corrupt")

	// ErrWrite is returned when the index cannot be persisted.
	ErrWrite = errors.New("label index write failed")
)

// Store loads and saves the label index.
type Store interface {
	// Load returns the persisted labels in stored order. A store that has
	// never been saved returns an empty slice.
	Load() ([]string, error)
	// Save replaces the persisted labels.
	Save(labels []string) error
}

// dedupe drops repeated labels, keeping the first occurrence.
func dedupe(labels []string) ([]string, bool) {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out, len(out) != len(labels)
}
