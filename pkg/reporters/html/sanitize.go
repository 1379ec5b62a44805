package html

import (
	stdhtml "html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formaudit/pkg/audit"
	"github.com/goliatone/go-formaudit/pkg/report"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// sanitizeReport strips markup that leaked into node labels from the captured
// page. Snippets stay untouched: the template escapes them, and they are the
// evidence the report exists to show. The input report is never mutated.
func sanitizeReport(rep report.Report) report.Report {
	verdicts := make([]audit.Verdict, len(rep.Verdicts))
	copy(verdicts, rep.Verdicts)

	for i := range verdicts {
		items := make([]audit.Item, len(verdicts[i].Details.Items))
		copy(items, verdicts[i].Details.Items)
		for j := range items {
			items[j].Node.NodeLabel = sanitizeLabel(items[j].Node.NodeLabel)
		}
		verdicts[i].Details.Items = items
	}

	rep.Verdicts = verdicts
	return rep
}

func sanitizeLabel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := labelSanitizer().Sanitize(trimmed)
	// The policy entity-escapes surviving text; undo that so the template's
	// own escaping does not double up.
	return strings.TrimSpace(stdhtml.UnescapeString(cleaned))
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return labelPolicy
}
