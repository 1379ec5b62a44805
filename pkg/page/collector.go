package page

import "context"

// Collector materializes the form/input records of a captured document. The
// audit core never parses markup itself; it consumes the Page a Collector
// produced.
type Collector interface {
	Collect(ctx context.Context, doc Document) (Page, error)
}
