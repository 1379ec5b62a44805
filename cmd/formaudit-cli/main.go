package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formaudit/pkg/page"
	"github.com/goliatone/go-formaudit/pkg/runner"
)

// manifest is the optional YAML configuration; flags override its values.
type manifest struct {
	Source   string   `yaml:"source"`
	Audits   []string `yaml:"audits"`
	Reporter string   `yaml:"reporter"`
	Locale   string   `yaml:"locale"`
	Output   string   `yaml:"output"`
}

func main() {
	configPath := flag.String("config", "", "audit manifest (YAML)")
	source := flag.String("source", "", "captured page path or URL")
	reporter := flag.String("reporter", "", "reporter to use (html, json, tui)")
	audits := flag.String("audits", "", "comma-separated audit ids (all when empty)")
	locale := flag.String("locale", "", "message bundle locale")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	cfg := manifest{}
	if *configPath != "" {
		loaded, err := loadManifest(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	applyFlagOverrides(&cfg, *source, *reporter, *audits, *locale, *output)

	src := parseSource(cfg.Source)
	if src == nil {
		log.Fatalf("invalid source: %q", cfg.Source)
	}

	ctx := context.Background()
	run := runner.New()

	out, err := run.Run(ctx, runner.Request{
		Source:   src,
		AuditIDs: cfg.Audits,
		Reporter: cfg.Reporter,
		Locale:   cfg.Locale,
	})
	if err != nil {
		log.Fatalf("Failed to audit page: %v", err)
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Report written to %s\n", cfg.Output)
	} else {
		fmt.Println(string(out))
	}
}

func loadManifest(path string) (manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return manifest{}, err
	}
	var cfg manifest
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return manifest{}, fmt.Errorf("parse %q: %w", path, err)
	}
	return cfg, nil
}

func applyFlagOverrides(cfg *manifest, source, reporter, audits, locale, output string) {
	if source != "" {
		cfg.Source = source
	}
	if reporter != "" {
		cfg.Reporter = reporter
	}
	if audits != "" {
		cfg.Audits = splitList(audits)
	}
	if locale != "" {
		cfg.Locale = locale
	}
	if output != "" {
		cfg.Output = output
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseSource(raw string) page.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return page.SourceFromURL(path)
	}
	return page.SourceFromFile(path)
}
