// Package autofill checks autocomplete attribute text against the WHATWG
// autofill field grammar: an optional section token, an optional
// category/contact-type prefix, and a required field name, separated by
// single spaces.
//
// See https://html.spec.whatwg.org/multipage/form-control-infrastructure.html#autofill
package autofill

import "strings"

// Validity reports the outcome of checking one autocomplete attribute. The
// three axes are independent; an axis that does not apply to the supplied
// text stays true.
type Validity struct {
	// Attribute is true when the field-name token is a recognized autofill
	// field name.
	Attribute bool `json:"attribute"`
	// Prefix is true when the category/contact-type token, if present, is
	// recognized.
	Prefix bool `json:"prefix"`
	// Section is true when the section token, if present, carries the
	// required "section-" marker.
	Section bool `json:"section"`
}

// Valid reports whether every axis passed. A control counts as a failure when
// any axis is false.
func (v Validity) Valid() bool {
	return v.Attribute && v.Prefix && v.Section
}

const sectionMarker = "section-"

// Validate checks raw autocomplete attribute text. The empty string covers
// both a missing attribute and an explicitly empty one; either way the field
// name axis fails while the optional axes stay vacuously true.
//
// Splitting is whitespace-sensitive: tokens are separated by single spaces
// and runs of spaces are not compacted. A split that yields anything other
// than exactly two or three tokens falls back to checking the raw untouched
// string as a lone field name.
func Validate(raw string) Validity {
	v := Validity{Attribute: true, Prefix: true, Section: true}

	if raw == "" {
		v.Attribute = false
		return v
	}

	if strings.Contains(raw, " ") {
		tokens := strings.Split(raw, " ")
		switch len(tokens) {
		case 2:
			return Validity{
				Attribute: IsFieldName(tokens[1]),
				Prefix:    IsPrefix(tokens[0]),
				Section:   true,
			}
		case 3:
			return Validity{
				Attribute: IsFieldName(tokens[2]),
				Prefix:    IsPrefix(tokens[1]),
				Section:   strings.HasPrefix(tokens[0], sectionMarker),
			}
		}
	}

	v.Attribute = IsFieldName(raw)
	return v
}

// IsFieldName reports whether token is a recognized autofill field name.
// Matching is case-sensitive per the grammar this audit enforces.
func IsFieldName(token string) bool {
	_, ok := fieldNames[token]
	return ok
}

// IsPrefix reports whether token is a recognized category/contact-type
// prefix.
func IsPrefix(token string) bool {
	_, ok := prefixes[token]
	return ok
}
