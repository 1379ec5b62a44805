// Package tui renders audit reports as an interactive terminal session: pick
// an audit, browse its findings, repeat. A plain mode covers non-interactive
// terminals and piped output.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formaudit/pkg/audit"
	"github.com/goliatone/go-formaudit/pkg/report"
)

type Option func(*Reporter)

// WithDriver injects a custom prompt driver.
func WithDriver(driver PromptDriver) Option {
	return func(r *Reporter) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithPlainOutput disables prompts; Render returns the full findings listing
// in one shot.
func WithPlainOutput() Option {
	return func(r *Reporter) {
		r.plain = true
	}
}

type Reporter struct {
	driver PromptDriver
	plain  bool
}

// New constructs a TUI reporter with the survey driver by default.
func New(options ...Option) (*Reporter, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Reporter{driver: driver}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	return r, nil
}

func (r *Reporter) Name() string {
	return "tui"
}

func (r *Reporter) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render drives the interactive session. The returned bytes are the session
// transcript so callers can persist what the user saw.
func (r *Reporter) Render(ctx context.Context, rep report.Report, _ report.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if r.plain {
		return []byte(renderPlain(rep)), nil
	}

	var transcript strings.Builder
	emit := func(msg string) error {
		transcript.WriteString(msg)
		transcript.WriteByte('\n')
		return r.driver.Info(ctx, msg)
	}

	if err := emit(summaryLine(rep)); err != nil {
		return nil, err
	}

	const exitLabel = "Exit"
	for {
		options := make([]string, 0, len(rep.Verdicts)+1)
		for _, verdict := range rep.Verdicts {
			options = append(options, verdictLabel(verdict))
		}
		options = append(options, exitLabel)

		choice, err := r.driver.Select(ctx, SelectConfig{
			Message: "Select an audit to inspect",
			Options: options,
		})
		if err != nil {
			if errors.Is(err, ErrAborted) {
				break
			}
			return nil, err
		}
		if choice < 0 || choice >= len(rep.Verdicts) {
			break
		}

		if err := emit(verdictDetail(rep.Verdicts[choice])); err != nil {
			return nil, err
		}
	}

	return []byte(transcript.String()), nil
}

func summaryLine(rep report.Report) string {
	status := "PASS"
	if !rep.Passed() {
		status = "FAIL"
	}
	if rep.URL != "" {
		return fmt.Sprintf("%s  %s  (%d finding(s))", status, rep.URL, rep.FailureCount())
	}
	return fmt.Sprintf("%s  (%d finding(s))", status, rep.FailureCount())
}

func verdictLabel(verdict audit.Verdict) string {
	marker := "✓"
	if !verdict.Passed() {
		marker = "✗"
	}
	label := fmt.Sprintf("%s %s", marker, verdict.Title)
	if verdict.DisplayValue != "" {
		label += " - " + verdict.DisplayValue
	}
	return label
}

func verdictDetail(verdict audit.Verdict) string {
	var b strings.Builder
	b.WriteString(verdict.Title)
	b.WriteByte('\n')
	if verdict.DisplayValue != "" {
		b.WriteString(verdict.DisplayValue)
		b.WriteByte('\n')
	}
	for _, heading := range verdict.Details.Headings {
		fmt.Fprintf(&b, "  [%s]\n", heading.Text)
	}
	for _, item := range verdict.Details.Items {
		fmt.Fprintf(&b, "  %s\n", item.Node.Snippet)
		if item.Node.NodeLabel != "" {
			fmt.Fprintf(&b, "    %s\n", item.Node.NodeLabel)
		}
	}
	if len(verdict.Details.Items) == 0 {
		b.WriteString("  no findings\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderPlain(rep report.Report) string {
	var b strings.Builder
	b.WriteString(summaryLine(rep))
	b.WriteByte('\n')
	for _, verdict := range rep.Verdicts {
		b.WriteByte('\n')
		b.WriteString(verdictDetail(verdict))
		b.WriteByte('\n')
	}
	return b.String()
}
