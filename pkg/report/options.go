package report

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formaudit/pkg/i18n"
)

// Options describe per-request data reporters can use to customise their
// output without touching the audit pipeline.
type Options struct {
	// Locale selects the message bundle for report chrome. Audit verdicts
	// arrive already localized; this only affects reporter-owned strings.
	Locale string

	// Translator resolves report chrome messages. Nil falls back to the
	// embedded default table.
	Translator i18n.Translator

	// OnMissing controls what a reporter prints when a translation cannot be
	// resolved.
	OnMissing i18n.MissingTranslationHandler

	// Theme carries resolved go-theme renderer configuration (tokens, CSS
	// variables, partial overrides). Nil renders with built-in styling.
	Theme *theme.RendererConfig
}
