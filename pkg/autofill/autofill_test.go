package autofill

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Validity
	}{
		{
			name: "missing attribute fails the field name axis only",
			raw:  "",
			want: Validity{Attribute: false, Prefix: true, Section: true},
		},
		{
			name: "single recognized field name",
			raw:  "email",
			want: Validity{Attribute: true, Prefix: true, Section: true},
		},
		{
			name: "single unrecognized token",
			raw:  "bogus",
			want: Validity{Attribute: false, Prefix: true, Section: true},
		},
		{
			name: "on and off are accepted",
			raw:  "off",
			want: Validity{Attribute: true, Prefix: true, Section: true},
		},
		{
			name: "prefix plus field name",
			raw:  "shipping address-line1",
			want: Validity{Attribute: true, Prefix: true, Section: true},
		},
		{
			name: "unrecognized prefix",
			raw:  "foo email",
			want: Validity{Attribute: true, Prefix: false, Section: true},
		},
		{
			name: "section plus prefix plus field name",
			raw:  "section-billing shipping cc-number",
			want: Validity{Attribute: true, Prefix: true, Section: true},
		},
		{
			name: "leading token without the section marker",
			raw:  "billing shipping cc-number",
			want: Validity{Attribute: true, Prefix: true, Section: false},
		},
		{
			name: "four tokens fall back to the raw string",
			raw:  "section-a billing shipping cc-number",
			want: Validity{Attribute: false, Prefix: true, Section: true},
		},
		{
			name: "doubled space yields an empty middle token",
			raw:  "shipping  email",
			want: Validity{Attribute: true, Prefix: false, Section: false},
		},
		{
			name: "trailing space counts as a two token split",
			raw:  "email ",
			want: Validity{Attribute: false, Prefix: false, Section: true},
		},
		{
			name: "tokens are case sensitive",
			raw:  "Email",
			want: Validity{Attribute: false, Prefix: true, Section: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Validate(tc.raw)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Validate(%q) mismatch (-want +got):\n%s", tc.raw, diff)
			}
		})
	}
}

func TestValidityValid(t *testing.T) {
	if !(Validity{Attribute: true, Prefix: true, Section: true}).Valid() {
		t.Fatalf("expected all-true validity to be valid")
	}
	for _, v := range []Validity{
		{Attribute: false, Prefix: true, Section: true},
		{Attribute: true, Prefix: false, Section: true},
		{Attribute: true, Prefix: true, Section: false},
	} {
		if v.Valid() {
			t.Fatalf("expected %+v to be invalid", v)
		}
	}
}

func TestVocabularyMembership(t *testing.T) {
	for _, token := range []string{"name", "cc-number", "bday-year", "tel-extension", "impp"} {
		if !IsFieldName(token) {
			t.Fatalf("expected %q to be a field name", token)
		}
	}
	if IsFieldName("shipping") {
		t.Fatalf("prefix tokens must not appear in the field name table")
	}
	for _, token := range []string{"home", "work", "mobile", "fax", "pager", "shipping", "billing"} {
		if !IsPrefix(token) {
			t.Fatalf("expected %q to be a prefix", token)
		}
	}
	if IsPrefix("email") {
		t.Fatalf("field names must not appear in the prefix table")
	}
}
