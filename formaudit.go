package formaudit

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formaudit/pkg/i18n"
	"github.com/goliatone/go-formaudit/pkg/page"
	"github.com/goliatone/go-formaudit/pkg/report"
	"github.com/goliatone/go-formaudit/pkg/runner"
)

// Request aliases runner.Request for callers driving the pipeline through the
// root package.
type Request = runner.Request

// Options describes per-request reporter overrides.
type Options = report.Options

// NewRunner exposes the runner constructor from the top-level module.
func NewRunner(options ...runner.Option) *runner.Runner {
	return runner.New(options...)
}

// Audit loads the capture, collects its forms, runs every configured audit,
// and renders the result with the named reporter. It is the simplest entry
// point for callers that just want report output.
func Audit(ctx context.Context, source page.Source, reporterName string, options ...runner.Option) ([]byte, error) {
	run := runner.New(options...)
	return run.Run(ctx, runner.Request{
		Source:   source,
		Reporter: reporterName,
	})
}

// AuditPage audits form records that were extracted elsewhere, bypassing
// loading and collection while still delegating to the runner.
func AuditPage(ctx context.Context, p page.Page, reporterName string, options ...runner.Option) ([]byte, error) {
	run := runner.New(options...)
	return run.Run(ctx, runner.Request{
		Page:     &p,
		Reporter: reporterName,
	})
}

// Evaluate returns the structured report for a capture without rendering it.
func Evaluate(ctx context.Context, source page.Source, options ...runner.Option) (*report.Report, error) {
	run := runner.New(options...)
	return run.Evaluate(ctx, runner.Request{Source: source})
}

// WithTheme passes a resolved go-theme renderer configuration through to
// reporters so themed report chrome resolves ahead of rendering.
func WithTheme(cfg *theme.RendererConfig) runner.Option {
	return runner.WithTheme(cfg)
}

// WithTranslator registers the translator used for verdict and report copy.
func WithTranslator(t i18n.Translator) runner.Option {
	return runner.WithTranslator(t)
}
