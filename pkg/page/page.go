package page

import "time"

// Input describes one audited form control exactly as it appeared in the
// captured markup. Records are value types and are never mutated by the audit
// pipeline once supplied.
type Input struct {
	// Autocomplete holds the raw autocomplete attribute text. An absent
	// attribute and an empty one are equivalent for audit purposes; both are
	// represented by the empty string.
	Autocomplete string `json:"autocomplete,omitempty"`

	// Snippet is the rendered start tag of the control, used only for
	// reporting.
	Snippet string `json:"snippet"`

	// NodeLabel is a human readable identifier for the control (label text,
	// aria-label, placeholder, or name, in that order of preference).
	NodeLabel string `json:"nodeLabel"`
}

// Form is an ordered sequence of inputs belonging to one <form> element or to
// the implicit form-less grouping.
type Form struct {
	Inputs []Input `json:"inputs"`
}

// Page carries every form grouping found in a captured document plus the
// capture metadata reporters display.
type Page struct {
	URL       string    `json:"url,omitempty"`
	FetchedAt time.Time `json:"fetchedAt,omitempty"`
	Forms     []Form    `json:"forms"`
}

// InputCount reports the total number of controls across all forms.
func (p Page) InputCount() int {
	total := 0
	for _, form := range p.Forms {
		total += len(form.Inputs)
	}
	return total
}
