package gotemplate

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestNewRequiresATemplateSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected construction without loaders to fail")
	}
}

func TestRenderTemplateFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/report.tmpl": {Data: []byte("url: {{ url }} failures: {{ failures }}")},
	}

	engine, err := New(WithFS(fsys))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := engine.RenderTemplate("templates/report", map[string]any{
		"url":      "https://example.com",
		"failures": 2,
	})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if got != "url: https://example.com failures: 2" {
		t.Fatalf("unexpected render output %q", got)
	}
}

func TestRenderStringDetectsInlineContent(t *testing.T) {
	fsys := fstest.MapFS{"empty.tmpl": {Data: []byte("")}}
	engine, err := New(WithFS(fsys))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := engine.Render("{{ label }}", map[string]any{"label": "hello"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "hello" {
		t.Fatalf("unexpected inline render %q", got)
	}
}

func TestRenderTemplateConvertsStructsThroughJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"row.tmpl": {Data: []byte("{{ item.node.snippet }}")},
	}

	engine, err := New(WithFS(fsys))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	type node struct {
		Snippet string `json:"snippet"`
	}
	type item struct {
		Node node `json:"node"`
	}

	got, err := engine.RenderTemplate("row", map[string]any{
		"item": item{Node: node{Snippet: "<input>"}},
	})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	// pongo2 autoescapes output, so the markup arrives entity-escaped.
	if !strings.Contains(got, "&lt;input&gt;") {
		t.Fatalf("expected escaped snippet in output, got %q", got)
	}
}
