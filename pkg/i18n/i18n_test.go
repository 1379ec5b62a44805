package i18n

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestFormatSubstitutesNamedParams(t *testing.T) {
	got := Format("{nodeCount} failing form input(s)", map[string]any{"nodeCount": 3})
	if got != "3 failing form input(s)" {
		t.Fatalf("unexpected formatted message: %q", got)
	}
}

func TestFormatLeavesUnknownPlaceholders(t *testing.T) {
	got := Format("hello {name}", map[string]any{"other": "x"})
	if got != "hello {name}" {
		t.Fatalf("unexpected formatted message: %q", got)
	}
}

func TestTableTranslateFallsBackToBaseAndDefaultLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("greeting: \"hello\"\nonly.en: \"english only\"\n")},
		"locales/es.yaml": {Data: []byte("greeting: \"hola\"\n")},
	}

	table, err := NewTable(fsys, "locales")
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	got, err := table.Translate("es-MX", "greeting")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "hola" {
		t.Fatalf("expected base-language fallback, got %q", got)
	}

	got, err = table.Translate("es", "only.en")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "english only" {
		t.Fatalf("expected default-locale fallback, got %q", got)
	}
}

func TestTableTranslateMissingKey(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("greeting: \"hello\"\n")},
	}

	table, err := NewTable(fsys, "locales")
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	if _, err := table.Translate("en", "nope"); !errors.Is(err, ErrMissingMessage) {
		t.Fatalf("expected ErrMissingMessage, got %v", err)
	}
}

func TestDefaultTableCarriesAuditMessages(t *testing.T) {
	table := Default()

	got, err := table.Translate("en", "audit.autocomplete.displayValue", map[string]any{"nodeCount": 1})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if !strings.Contains(got, "1") {
		t.Fatalf("expected nodeCount substitution, got %q", got)
	}

	if _, err := table.Translate("es", "audit.autocomplete.title"); err != nil {
		t.Fatalf("expected spanish bundle to carry audit titles: %v", err)
	}
}
