package audit

import (
	"strings"

	"github.com/goliatone/go-formaudit/pkg/autofill"
	"github.com/goliatone/go-formaudit/pkg/page"
)

// AutocompleteID names the autocomplete attribute audit.
const AutocompleteID = "autocomplete-attributes"

// titleMetadataMarker is where failure snippets get cut: everything from the
// injected title metadata onward is reporting noise.
const titleMetadataMarker = ` title=`

// Autocomplete checks that every audited form control carries an autocomplete
// attribute that conforms to the WHATWG autofill grammar.
type Autocomplete struct{}

var _ Audit = Autocomplete{}

func (Autocomplete) Meta() Meta {
	return Meta{
		ID:             AutocompleteID,
		TitleKey:       "audit.autocomplete.title",
		FailureKey:     "audit.autocomplete.failureTitle",
		DescriptionKey: "audit.autocomplete.description",
	}
}

// Run walks forms then inputs in the order supplied, validating each
// autocomplete attribute. Traversal order only affects reporting order, never
// the score.
func (a Autocomplete) Run(p page.Page, opts Options) Verdict {
	meta := a.Meta()

	items := make([]Item, 0)
	for _, form := range p.Forms {
		for _, input := range form.Inputs {
			if autofill.Validate(input.Autocomplete).Valid() {
				continue
			}
			items = append(items, Item{Node: FailureNode{
				Type:      "node",
				Snippet:   truncateSnippet(input.Snippet),
				NodeLabel: input.NodeLabel,
			}})
		}
	}

	verdict := Verdict{
		AuditID:     meta.ID,
		Title:       translate(opts, meta.TitleKey),
		Description: translate(opts, meta.DescriptionKey),
		Score:       ScorePass,
		Details: Details{
			Headings: []Heading{{
				Key:      "node",
				ItemType: "node",
				Text:     translate(opts, "report.columns.node"),
			}},
			Items: items,
		},
	}

	if len(items) > 0 {
		verdict.Score = ScoreFail
		verdict.Title = translate(opts, meta.FailureKey)
		verdict.DisplayValue = translate(opts, "audit.autocomplete.displayValue",
			map[string]any{"nodeCount": len(items)})
	}

	return verdict
}

// truncateSnippet drops trailing title metadata from a rendered start tag,
// closing the tag again after the cut.
func truncateSnippet(snippet string) string {
	idx := strings.Index(snippet, titleMetadataMarker)
	if idx < 0 {
		return snippet
	}
	return snippet[:idx] + ">"
}
