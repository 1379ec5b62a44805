package audit

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formaudit/pkg/page"
)

func TestAutocompletePassesWhenEveryInputIsValid(t *testing.T) {
	p := page.Page{Forms: []page.Form{
		{Inputs: []page.Input{
			{Autocomplete: "name", Snippet: `<input autocomplete="name">`, NodeLabel: "Name"},
			{Autocomplete: "shipping address-line1", Snippet: `<input>`, NodeLabel: "Address"},
		}},
		{Inputs: []page.Input{
			{Autocomplete: "section-billing shipping cc-number", Snippet: `<input>`, NodeLabel: "Card"},
		}},
	}}

	verdict := Autocomplete{}.Run(p, Options{})

	if verdict.Score != ScorePass {
		t.Fatalf("expected passing score, got %d", verdict.Score)
	}
	if verdict.DisplayValue != "" {
		t.Fatalf("display value must stay unset on pass, got %q", verdict.DisplayValue)
	}
	if len(verdict.Details.Items) != 0 {
		t.Fatalf("expected no failure items, got %d", len(verdict.Details.Items))
	}
}

func TestAutocompleteReportsSingleFailureAcrossForms(t *testing.T) {
	p := page.Page{Forms: []page.Form{
		{Inputs: []page.Input{
			{Autocomplete: "email", Snippet: `<input type="email">`, NodeLabel: "Email"},
		}},
		{Inputs: []page.Input{
			{Autocomplete: "bogus", Snippet: `<input id="c">`, NodeLabel: "Bogus"},
			{Autocomplete: "tel", Snippet: `<input type="tel">`, NodeLabel: "Phone"},
		}},
	}}

	verdict := Autocomplete{}.Run(p, Options{})

	if verdict.Score != ScoreFail {
		t.Fatalf("expected failing score, got %d", verdict.Score)
	}
	if verdict.DisplayValue != "1 failing form input(s)" {
		t.Fatalf("unexpected display value %q", verdict.DisplayValue)
	}

	want := []Item{{Node: FailureNode{Type: "node", Snippet: `<input id="c">`, NodeLabel: "Bogus"}}}
	if diff := cmp.Diff(want, verdict.Details.Items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestAutocompleteMissingAttributeIsAFinding(t *testing.T) {
	p := page.Page{Forms: []page.Form{
		{Inputs: []page.Input{
			{Snippet: `<input name="q">`, NodeLabel: "q"},
		}},
	}}

	verdict := Autocomplete{}.Run(p, Options{})
	if verdict.Score != ScoreFail {
		t.Fatalf("an input without an autocomplete attribute must fail the audit")
	}
	if got := len(verdict.Details.Items); got != 1 {
		t.Fatalf("expected 1 failure item, got %d", got)
	}
}

func TestAutocompletePreservesTraversalOrder(t *testing.T) {
	p := page.Page{Forms: []page.Form{
		{Inputs: []page.Input{
			{Autocomplete: "first", Snippet: `<input id="a">`, NodeLabel: "a"},
			{Autocomplete: "second", Snippet: `<input id="b">`, NodeLabel: "b"},
		}},
		{Inputs: []page.Input{
			{Autocomplete: "third", Snippet: `<input id="c">`, NodeLabel: "c"},
		}},
	}}

	verdict := Autocomplete{}.Run(p, Options{})

	labels := make([]string, 0, len(verdict.Details.Items))
	for _, item := range verdict.Details.Items {
		labels = append(labels, item.Node.NodeLabel)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, labels); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestAutocompleteHeadingsAreLocalized(t *testing.T) {
	p := page.Page{Forms: []page.Form{
		{Inputs: []page.Input{{Autocomplete: "bogus", Snippet: `<input>`, NodeLabel: "x"}}},
	}}

	verdict := Autocomplete{}.Run(p, Options{Locale: "es"})

	if len(verdict.Details.Headings) != 1 {
		t.Fatalf("expected exactly one heading, got %d", len(verdict.Details.Headings))
	}
	heading := verdict.Details.Headings[0]
	if heading.Key != "node" || heading.ItemType != "node" {
		t.Fatalf("unexpected heading identity: %+v", heading)
	}
	if heading.Text != "Elementos con errores" {
		t.Fatalf("expected spanish column header, got %q", heading.Text)
	}
}

func TestTruncateSnippetCutsTitleMetadata(t *testing.T) {
	tests := []struct {
		name    string
		snippet string
		want    string
	}{
		{
			name:    "title metadata is dropped and the tag reclosed",
			snippet: `<input type="text" title="Foo">`,
			want:    `<input type="text">`,
		},
		{
			name:    "snippets without title metadata pass through",
			snippet: `<input type="text">`,
			want:    `<input type="text">`,
		},
		{
			name:    "only the first occurrence matters",
			snippet: `<input title="a" title="b">`,
			want:    `<input>`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncateSnippet(tc.snippet); got != tc.want {
				t.Fatalf("truncateSnippet(%q) = %q, want %q", tc.snippet, got, tc.want)
			}
		})
	}
}
