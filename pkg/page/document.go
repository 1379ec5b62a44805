package page

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"
)

// Document wraps the raw captured HTML payload and its origin. Collectors
// consume a Document; the rest of the pipeline only ever sees Page records.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("page: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("page: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the captured payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Loader fetches captured documents from a Source.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions carries the pre-resolved configuration loader implementations
// accept at construction time.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS lookups.
	FileSystem fs.FS
	// HTTPClient enables SourceKindURL lookups when set.
	HTTPClient *http.Client
	// AllowHTTPFallback constructs a default client when HTTPClient is nil.
	AllowHTTPFallback bool
	// RequestTimeout bounds URL fetches.
	RequestTimeout time.Duration
}
