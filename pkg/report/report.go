package report

import (
	"context"
	"time"

	"github.com/goliatone/go-formaudit/pkg/audit"
)

// Report aggregates every verdict produced for one captured page.
type Report struct {
	URL       string          `json:"url,omitempty"`
	FetchedAt time.Time       `json:"fetchedAt,omitempty"`
	Verdicts  []audit.Verdict `json:"verdicts"`
}

// Passed reports whether every audit in the report passed.
func (r Report) Passed() bool {
	for _, verdict := range r.Verdicts {
		if !verdict.Passed() {
			return false
		}
	}
	return true
}

// FailureCount totals the failure items across all verdicts.
func (r Report) FailureCount() int {
	total := 0
	for _, verdict := range r.Verdicts {
		total += len(verdict.Details.Items)
	}
	return total
}

// Reporter converts a Report into a byte representation (HTML, JSON, a
// terminal session transcript, etc.).
type Reporter interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, report Report, options Options) ([]byte, error)
}
