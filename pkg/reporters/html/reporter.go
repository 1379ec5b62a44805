// Package html renders audit reports as a standalone HTML document with one
// findings table per audit.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-formaudit/pkg/i18n"
	"github.com/goliatone/go-formaudit/pkg/report"
	"github.com/goliatone/go-formaudit/pkg/report/template"
	"github.com/goliatone/go-formaudit/pkg/report/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS fs.FS
	engine     template.Renderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithEngine injects a custom template engine implementation.
func WithEngine(engine template.Renderer) Option {
	return func(cfg *config) {
		if engine != nil {
			cfg.engine = engine
		}
	}
}

type Reporter struct {
	templates template.Renderer
}

// New constructs the HTML reporter applying any provided options.
func New(options ...Option) (*Reporter, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	engine := cfg.engine
	if engine == nil {
		built, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html reporter: configure template engine: %w", err)
		}
		engine = built
	}

	return &Reporter{templates: engine}, nil
}

func (r *Reporter) Name() string {
	return "html"
}

func (r *Reporter) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Reporter) Render(_ context.Context, rep report.Report, opts report.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html reporter: template engine is nil")
	}

	result, err := r.templates.RenderTemplate("templates/report.tmpl", map[string]any{
		"report":  sanitizeReport(rep),
		"strings": chromeStrings(rep, opts),
		"theme":   themeContext(opts.Theme),
		"locale":  localeOrDefault(opts.Locale),
	})
	if err != nil {
		return nil, fmt.Errorf("html reporter: render template: %w", err)
	}
	return []byte(result), nil
}

func chromeStrings(rep report.Report, opts report.Options) map[string]string {
	return map[string]string{
		"title":        translate(opts, "report.title"),
		"generatedFor": translate(opts, "report.generatedFor", map[string]any{"url": rep.URL}),
		"noFindings":   translate(opts, "report.noFindings"),
	}
}

func translate(opts report.Options, key string, params ...any) string {
	translator := opts.Translator
	if translator == nil {
		translator = i18n.Default()
	}
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = i18n.DefaultMissingHandler
	}

	msg, err := translator.Translate(opts.Locale, key, params...)
	if err != nil || msg == "" {
		return onMissing(opts.Locale, key, params, err)
	}
	return msg
}

func localeOrDefault(locale string) string {
	if locale == "" {
		return i18n.DefaultLocale
	}
	return locale
}
