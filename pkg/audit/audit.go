// Package audit defines the verdict model shared by every page check and the
// checks themselves. Audits are pure functions over already-captured page
// data: no I/O, no retries, no shared mutable state.
package audit

import (
	"github.com/goliatone/go-formaudit/pkg/i18n"
	"github.com/goliatone/go-formaudit/pkg/page"
)

// Score values for binary audits.
const (
	ScoreFail = 0
	ScorePass = 1
)

// Meta identifies an audit and the message keys reporters use for its
// headline copy.
type Meta struct {
	ID             string
	TitleKey       string
	FailureKey     string
	DescriptionKey string
}

// Options carries per-run localization settings. The zero value localizes
// with the embedded default table in the default locale.
type Options struct {
	Locale     string
	Translator i18n.Translator
	OnMissing  i18n.MissingTranslationHandler
}

// Audit evaluates one rule against a captured page.
type Audit interface {
	Meta() Meta
	Run(p page.Page, opts Options) Verdict
}

// Heading describes one column of an audit's detail table.
type Heading struct {
	Key      string `json:"key"`
	ItemType string `json:"itemType"`
	Text     string `json:"text"`
}

// FailureNode references one offending element, carrying just enough markup
// context for a report to point at it.
type FailureNode struct {
	Type      string `json:"type"`
	Snippet   string `json:"snippet"`
	NodeLabel string `json:"nodeLabel"`
}

// Item is one detail-table row.
type Item struct {
	Node FailureNode `json:"node"`
}

// Details is the tabular findings structure attached to a verdict. Rows stay
// in traversal order; nothing is deduplicated or sorted.
type Details struct {
	Headings []Heading `json:"headings"`
	Items    []Item    `json:"items"`
}

// Verdict is the outcome of running one audit over a page.
type Verdict struct {
	AuditID      string  `json:"auditId"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	Score        int     `json:"score"`
	DisplayValue string  `json:"displayValue,omitempty"`
	Details      Details `json:"details"`
}

// Passed reports whether the audit found nothing to complain about.
func (v Verdict) Passed() bool {
	return v.Score == ScorePass
}

// translate resolves a message through the configured translator, falling
// back to the embedded default table and finally to the missing handler.
func translate(opts Options, key string, params ...any) string {
	translator := opts.Translator
	if translator == nil {
		translator = i18n.Default()
	}
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = i18n.DefaultMissingHandler
	}

	msg, err := translator.Translate(opts.Locale, key, params...)
	if err != nil || msg == "" {
		return onMissing(opts.Locale, key, params, err)
	}
	return msg
}
