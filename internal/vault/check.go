package vault

import (
	"errors"

	"github.com/benaskins/miso/internal/keychain"
)

// Report is the result of Check.
type Report struct {
	// Checked is the number of indexed labels probed.
	Checked int
	// Orphans are indexed labels with no secret in the backend, in index order.
	Orphans []string
	// Failed maps labels whose probe failed for another reason to that error.
	Failed map[string]error
}

// Consistent reports whether every indexed label has a readable secret.
func (r Report) Consistent() bool {
	return len(r.Orphans) == 0 && len(r.Failed) == 0
}

// Check probes the backend for every indexed label. It never modifies
// either store.
func (v *Vault) Check() (Report, error) {
	labels, err := v.load()
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Checked: len(labels),
		Failed:  make(map[string]error),
	}
	for _, l := range labels {
		_, err := v.secrets.Get(l)
		switch {
		case err == nil:
		case errors.Is(err, keychain.ErrNotFound):
			report.Orphans = append(report.Orphans, l)
		default:
			report.Failed[l] = err
		}
	}
	if len(report.Orphans) > 0 {
		v.logger.Warn("orphan labels in index", "count", len(report.Orphans))
	}
	return report, nil
}
