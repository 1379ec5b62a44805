// Package runner coordinates the full pipeline from captured document to
// rendered report. It applies sensible defaults (built-in audits, HTML
// reporter, embedded templates) while remaining open to dependency injection
// for advanced callers.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formaudit/internal/capture"
	"github.com/goliatone/go-formaudit/internal/collector"
	"github.com/goliatone/go-formaudit/pkg/audit"
	"github.com/goliatone/go-formaudit/pkg/i18n"
	"github.com/goliatone/go-formaudit/pkg/page"
	"github.com/goliatone/go-formaudit/pkg/report"
	htmlreporter "github.com/goliatone/go-formaudit/pkg/reporters/html"
	"github.com/goliatone/go-formaudit/pkg/reporters/jsonout"
	"github.com/goliatone/go-formaudit/pkg/reporters/tui"
)

const defaultReporterName = "html"

const defaultRequestTimeout = 30 * time.Second

// Option customises the runner configuration.
type Option func(*Runner)

// WithLoader injects a custom capture loader.
func WithLoader(loader page.Loader) Option {
	return func(r *Runner) {
		r.loader = loader
	}
}

// WithCollector injects a custom form collector.
func WithCollector(c page.Collector) Option {
	return func(r *Runner) {
		r.collector = c
	}
}

// WithAudits replaces the default audit set.
func WithAudits(audits ...audit.Audit) Option {
	return func(r *Runner) {
		if len(audits) == 0 {
			return
		}
		r.audits = append([]audit.Audit(nil), audits...)
	}
}

// WithRegistry injects a reporter registry.
func WithRegistry(registry *report.Registry) Option {
	return func(r *Runner) {
		r.registry = registry
	}
}

// WithDefaultReporter overrides the reporter used when a request omits an
// explicit Reporter field.
func WithDefaultReporter(name string) Option {
	return func(r *Runner) {
		r.defaultReporter = name
	}
}

// WithTranslator injects the translator used for verdict and report copy.
func WithTranslator(t i18n.Translator) Option {
	return func(r *Runner) {
		r.translator = t
	}
}

// WithTheme passes resolved go-theme renderer configuration through to
// reporters.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(r *Runner) {
		r.theme = cfg
	}
}

// Runner coordinates loading, collection, auditing, and reporting.
type Runner struct {
	loader          page.Loader
	collector       page.Collector
	audits          []audit.Audit
	registry        *report.Registry
	defaultReporter string
	translator      i18n.Translator
	theme           *theme.RendererConfig
	initialiseErr   error
}

// New constructs a Runner applying any provided options. Missing dependencies
// are initialised with the built-in implementations so callers can start with
// a single constructor call.
func New(options ...Option) *Runner {
	r := &Runner{
		defaultReporter: defaultReporterName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	r.applyDefaults()
	return r
}

func (r *Runner) applyDefaults() {
	if r.loader == nil {
		r.loader = capture.New(page.LoaderOptions{
			AllowHTTPFallback: true,
			RequestTimeout:    defaultRequestTimeout,
		})
	}
	if r.collector == nil {
		r.collector = collector.New()
	}
	if len(r.audits) == 0 {
		r.audits = []audit.Audit{audit.Autocomplete{}}
	}
	if r.registry == nil {
		registry := report.NewRegistry()

		htmlRep, err := htmlreporter.New()
		if err != nil {
			r.initialiseErr = fmt.Errorf("runner: configure html reporter: %w", err)
			return
		}
		tuiRep, err := tui.New()
		if err != nil {
			r.initialiseErr = fmt.Errorf("runner: configure tui reporter: %w", err)
			return
		}

		registry.MustRegister(htmlRep)
		registry.MustRegister(jsonout.New(jsonout.WithIndent("  ")))
		registry.MustRegister(tuiRep)
		r.registry = registry
	}
}

// Request describes the inputs required to audit one captured page.
type Request struct {
	// Source identifies where the capture lives. Optional when Document or
	// Page is supplied.
	Source page.Source

	// Document allows callers to bypass the loader when they already hold the
	// raw capture.
	Document *page.Document

	// Page bypasses both loading and collection for callers that extracted
	// the form records elsewhere.
	Page *page.Page

	// AuditIDs restricts which audits run. Empty means all configured audits.
	AuditIDs []string

	// Reporter names the reporter to use. If empty, the runner falls back to
	// the configured default reporter.
	Reporter string

	// Locale selects the message bundle for verdicts and report chrome.
	Locale string
}

// Run audits the requested capture and renders the result with the requested
// reporter.
func (r *Runner) Run(ctx context.Context, req Request) ([]byte, error) {
	rep, err := r.Evaluate(ctx, req)
	if err != nil {
		return nil, err
	}

	name := req.Reporter
	if name == "" {
		name = r.defaultReporter
	}
	reporter, err := r.registry.Get(name)
	if err != nil {
		return nil, err
	}

	return reporter.Render(ctx, *rep, report.Options{
		Locale:     req.Locale,
		Translator: r.translator,
		Theme:      r.theme,
	})
}

// Evaluate audits the requested capture and returns the structured report
// without rendering it.
func (r *Runner) Evaluate(ctx context.Context, req Request) (*report.Report, error) {
	if r.initialiseErr != nil {
		return nil, r.initialiseErr
	}

	p, err := r.resolvePage(ctx, req)
	if err != nil {
		return nil, err
	}

	audits, err := r.selectAudits(req.AuditIDs)
	if err != nil {
		return nil, err
	}

	opts := audit.Options{Locale: req.Locale, Translator: r.translator}
	verdicts := make([]audit.Verdict, 0, len(audits))
	for _, a := range audits {
		verdicts = append(verdicts, a.Run(p, opts))
	}

	return &report.Report{
		URL:       p.URL,
		FetchedAt: p.FetchedAt,
		Verdicts:  verdicts,
	}, nil
}

// AuditIDs lists the configured audits in registration order.
func (r *Runner) AuditIDs() []string {
	ids := make([]string, 0, len(r.audits))
	for _, a := range r.audits {
		ids = append(ids, a.Meta().ID)
	}
	return ids
}

// ReporterNames lists the registered reporters.
func (r *Runner) ReporterNames() []string {
	if r.registry == nil {
		return nil
	}
	return r.registry.Names()
}

func (r *Runner) resolvePage(ctx context.Context, req Request) (page.Page, error) {
	if req.Page != nil {
		return *req.Page, nil
	}

	doc := req.Document
	if doc == nil {
		if req.Source == nil {
			return page.Page{}, errors.New("runner: request needs a Source, Document, or Page")
		}
		loaded, err := r.loader.Load(ctx, req.Source)
		if err != nil {
			return page.Page{}, err
		}
		doc = &loaded
	}

	p, err := r.collector.Collect(ctx, *doc)
	if err != nil {
		return page.Page{}, err
	}
	p.FetchedAt = time.Now().UTC()
	return p, nil
}

func (r *Runner) selectAudits(ids []string) ([]audit.Audit, error) {
	if len(ids) == 0 {
		return r.audits, nil
	}

	byID := make(map[string]audit.Audit, len(r.audits))
	for _, a := range r.audits {
		byID[a.Meta().ID] = a
	}

	selected := make([]audit.Audit, 0, len(ids))
	for _, id := range ids {
		a, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("runner: unknown audit %q", id)
		}
		selected = append(selected, a)
	}
	return selected, nil
}
