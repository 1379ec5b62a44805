// Package i18n provides the message table lookup used wherever the audit
// pipeline produces user-facing text. Messages are keyed by identifier and
// accept named parameters, e.g. {nodeCount}.
package i18n

import (
	"errors"
	"fmt"
	"strings"
)

// Translator resolves a message key to localized text. Params follow the
// convention used across the module: a single map[string]any of named
// placeholder values, e.g. {"nodeCount": 3}.
type Translator interface {
	Translate(locale, key string, params ...any) (string, error)
}

// MissingTranslationHandler controls the string returned when a translation
// cannot be resolved.
type MissingTranslationHandler func(locale, key string, params []any, err error) string

// ErrMissingTranslator signals that no translator was configured for a lookup
// that required one.
var ErrMissingTranslator = errors.New("i18n: translator is not configured")

// ErrMissingMessage signals that a translator has no entry for the requested
// key in any candidate locale.
var ErrMissingMessage = errors.New("i18n: message not found")

// DefaultMissingHandler returns the key itself so missing translations stay
// visible in output instead of disappearing.
func DefaultMissingHandler(_ string, key string, _ []any, _ error) string {
	return key
}

// Format substitutes {name} placeholders in template with the values found in
// params. Unknown placeholders are left untouched.
func Format(template string, params ...any) string {
	values := paramMap(params)
	if len(values) == 0 {
		return template
	}

	out := template
	for name, value := range values {
		out = strings.ReplaceAll(out, "{"+name+"}", fmt.Sprint(value))
	}
	return out
}

func paramMap(params []any) map[string]any {
	merged := make(map[string]any)
	for _, param := range params {
		values, ok := param.(map[string]any)
		if !ok {
			continue
		}
		for name, value := range values {
			merged[strings.TrimSpace(name)] = value
		}
	}
	if len(merged) == 0 {
		return nil
	}
	return merged
}
