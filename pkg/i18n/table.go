package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLocale is the bundle used when a requested locale has no entry for a
// key.
const DefaultLocale = "en"

// Table is a Translator backed by per-locale message maps. Tables are
// immutable after construction and safe for concurrent use.
type Table struct {
	bundles map[string]map[string]string
}

var _ Translator = (*Table)(nil)

// NewTable builds a Table from an fs.FS containing <locale>.yaml bundles at
// the supplied root. Each bundle is a flat map of message key to template.
func NewTable(fsys fs.FS, root string) (*Table, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("i18n: read locale dir %q: %w", root, err)
	}

	bundles := make(map[string]map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		raw, err := fs.ReadFile(fsys, path.Join(root, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("i18n: read bundle %q: %w", entry.Name(), err)
		}

		messages := make(map[string]string)
		if err := yaml.Unmarshal(raw, &messages); err != nil {
			return nil, fmt.Errorf("i18n: parse bundle %q: %w", entry.Name(), err)
		}

		locale := strings.TrimSuffix(entry.Name(), ".yaml")
		bundles[locale] = messages
	}

	if len(bundles) == 0 {
		return nil, fmt.Errorf("i18n: no locale bundles found under %q", root)
	}
	return &Table{bundles: bundles}, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the Table backed by the embedded locale bundles. The
// embedded bundles are validated at build time, so failure here indicates a
// broken binary and panics.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = NewTable(localeFS, "locales")
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultTable
}

// Translate resolves key in the requested locale, falling back to the base
// language ("es" for "es-MX") and then to DefaultLocale before failing.
func (t *Table) Translate(locale, key string, params ...any) (string, error) {
	if t == nil || len(t.bundles) == 0 {
		return "", ErrMissingTranslator
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrMissingMessage)
	}

	for _, candidate := range localeCandidates(locale) {
		bundle, ok := t.bundles[candidate]
		if !ok {
			continue
		}
		if template, ok := bundle[key]; ok {
			return Format(template, params...), nil
		}
	}

	return "", fmt.Errorf("%w: %q in locale %q", ErrMissingMessage, key, locale)
}

// Locales reports which bundles the table carries.
func (t *Table) Locales() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.bundles))
	for locale := range t.bundles {
		out = append(out, locale)
	}
	return out
}

func localeCandidates(locale string) []string {
	locale = strings.TrimSpace(locale)
	candidates := make([]string, 0, 3)
	if locale != "" {
		candidates = append(candidates, locale)
		if idx := strings.IndexAny(locale, "-_"); idx > 0 {
			candidates = append(candidates, locale[:idx])
		}
	}
	return append(candidates, DefaultLocale)
}
