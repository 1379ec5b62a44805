// Package collector extracts form and input records from captured HTML. It
// feeds the audit core the simple in-memory structure it consumes; nothing in
// here affects how attributes are judged.
package collector

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-formaudit/pkg/page"
)

// Collector parses captured HTML and groups audited controls by their owning
// <form>, with a trailing implicit group for form-less controls.
type Collector struct{}

var _ page.Collector = (*Collector)(nil)

// New constructs a Collector.
func New() *Collector {
	return &Collector{}
}

// Collect parses the document payload and walks it in document order.
func (c *Collector) Collect(ctx context.Context, doc page.Document) (page.Page, error) {
	select {
	case <-ctx.Done():
		return page.Page{}, ctx.Err()
	default:
	}

	root, err := html.Parse(bytes.NewReader(doc.Raw()))
	if err != nil {
		return page.Page{}, fmt.Errorf("collector: parse %q: %w", doc.Location(), err)
	}

	w := &walker{
		labels:    indexLabels(root),
		formIndex: make(map[*html.Node]int),
	}
	w.walk(root)

	forms := w.forms
	if len(w.orphans) > 0 {
		forms = append(forms, page.Form{Inputs: w.orphans})
	}

	return page.Page{URL: doc.Location(), Forms: forms}, nil
}

// skippedInputTypes lists input types that are not autofill targets and are
// therefore excluded from the audit.
var skippedInputTypes = map[string]struct{}{
	"hidden":   {},
	"submit":   {},
	"image":    {},
	"reset":    {},
	"button":   {},
	"checkbox": {},
	"radio":    {},
}

type walker struct {
	labels    map[string]string
	forms     []page.Form
	formIndex map[*html.Node]int
	orphans   []page.Input
}

func (w *walker) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Form:
			w.formIndex[n] = len(w.forms)
			w.forms = append(w.forms, page.Form{})
		case atom.Input, atom.Select, atom.Textarea:
			w.record(n)
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		w.walk(child)
	}
}

func (w *walker) record(n *html.Node) {
	if n.DataAtom == atom.Input {
		if _, skip := skippedInputTypes[attrValue(n, "type")]; skip {
			return
		}
	}

	autocomplete, _ := lookupAttr(n, "autocomplete")
	input := page.Input{
		Autocomplete: autocomplete,
		Snippet:      renderStartTag(n),
		NodeLabel:    w.nodeLabel(n),
	}

	if form := enclosingForm(n); form != nil {
		idx := w.formIndex[form]
		w.forms[idx].Inputs = append(w.forms[idx].Inputs, input)
		return
	}
	w.orphans = append(w.orphans, input)
}

// nodeLabel derives a human readable identifier: explicit <label for=>, a
// wrapping label, aria-label, placeholder, name, and finally the tag name.
func (w *walker) nodeLabel(n *html.Node) string {
	if id := attrValue(n, "id"); id != "" {
		if label, ok := w.labels[id]; ok && label != "" {
			return label
		}
	}
	if label := wrappingLabelText(n); label != "" {
		return label
	}
	for _, name := range []string{"aria-label", "placeholder", "name"} {
		if value := attrValue(n, name); value != "" {
			return value
		}
	}
	return n.Data
}

func enclosingForm(n *html.Node) *html.Node {
	for parent := n.Parent; parent != nil; parent = parent.Parent {
		if parent.Type == html.ElementNode && parent.DataAtom == atom.Form {
			return parent
		}
	}
	return nil
}

func wrappingLabelText(n *html.Node) string {
	for parent := n.Parent; parent != nil; parent = parent.Parent {
		if parent.Type == html.ElementNode && parent.DataAtom == atom.Label {
			return textContent(parent)
		}
	}
	return ""
}

// indexLabels maps label targets (the for attribute) to their text so
// controls can be named without re-walking the tree per input.
func indexLabels(root *html.Node) map[string]string {
	labels := make(map[string]string)

	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Label {
			if target := attrValue(n, "for"); target != "" {
				if _, exists := labels[target]; !exists {
					labels[target] = textContent(n)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(root)

	return labels
}

func lookupAttr(n *html.Node, name string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

func attrValue(n *html.Node, name string) string {
	value, _ := lookupAttr(n, name)
	return value
}
