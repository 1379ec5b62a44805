// Package jsonout emits audit reports in the machine-readable shape consumed
// by downstream report tooling: score, optional displayValue, and a details
// table with one node-reference column.
package jsonout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goliatone/go-formaudit/pkg/audit"
	"github.com/goliatone/go-formaudit/pkg/report"
)

type Option func(*Reporter)

// WithIndent switches the output to indented JSON.
func WithIndent(indent string) Option {
	return func(r *Reporter) {
		r.indent = indent
	}
}

type Reporter struct {
	indent string
}

// New constructs the JSON reporter applying any provided options.
func New(options ...Option) *Reporter {
	r := &Reporter{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Reporter) Name() string {
	return "json"
}

func (r *Reporter) ContentType() string {
	return "application/json"
}

// payload mirrors the external output contract. Verdicts keep their wire
// shape; only the envelope is owned here.
type payload struct {
	URL       string          `json:"url,omitempty"`
	FetchedAt *time.Time      `json:"fetchedAt,omitempty"`
	Audits    []audit.Verdict `json:"audits"`
}

func (r *Reporter) Render(_ context.Context, rep report.Report, _ report.Options) ([]byte, error) {
	out := payload{
		URL:    rep.URL,
		Audits: rep.Verdicts,
	}
	if !rep.FetchedAt.IsZero() {
		fetched := rep.FetchedAt
		out.FetchedAt = &fetched
	}
	if out.Audits == nil {
		out.Audits = []audit.Verdict{}
	}

	var (
		data []byte
		err  error
	)
	if r.indent != "" {
		data, err = json.MarshalIndent(out, "", r.indent)
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return nil, fmt.Errorf("json reporter: marshal report: %w", err)
	}
	return data, nil
}
