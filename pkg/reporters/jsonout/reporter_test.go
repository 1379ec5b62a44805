package jsonout

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/goliatone/go-formaudit/pkg/audit"
	"github.com/goliatone/go-formaudit/pkg/report"
)

func TestRenderMatchesOutputContract(t *testing.T) {
	rep := report.Report{
		URL: "https://example.com",
		Verdicts: []audit.Verdict{{
			AuditID:      audit.AutocompleteID,
			Title:        "Form inputs do not have valid autocomplete attributes",
			Score:        audit.ScoreFail,
			DisplayValue: "1 failing form input(s)",
			Details: audit.Details{
				Headings: []audit.Heading{{Key: "node", ItemType: "node", Text: "Failing Elements"}},
				Items: []audit.Item{{Node: audit.FailureNode{
					Type:      "node",
					Snippet:   `<input type="text">`,
					NodeLabel: "Street",
				}}},
			},
		}},
	}

	out, err := New().Render(context.Background(), rep, report.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded struct {
		URL    string `json:"url"`
		Audits []struct {
			Score        int    `json:"score"`
			DisplayValue string `json:"displayValue"`
			Details      struct {
				Headings []map[string]string `json:"headings"`
				Items    []struct {
					Node map[string]string `json:"node"`
				} `json:"items"`
			} `json:"details"`
		} `json:"audits"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.URL != "https://example.com" {
		t.Fatalf("unexpected url %q", decoded.URL)
	}
	if len(decoded.Audits) != 1 {
		t.Fatalf("expected 1 audit, got %d", len(decoded.Audits))
	}

	a := decoded.Audits[0]
	if a.Score != 0 {
		t.Fatalf("expected score 0, got %d", a.Score)
	}
	if a.DisplayValue != "1 failing form input(s)" {
		t.Fatalf("unexpected displayValue %q", a.DisplayValue)
	}
	if len(a.Details.Headings) != 1 || a.Details.Headings[0]["itemType"] != "node" {
		t.Fatalf("unexpected headings %+v", a.Details.Headings)
	}
	if len(a.Details.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(a.Details.Items))
	}
	node := a.Details.Items[0].Node
	if node["type"] != "node" || node["snippet"] != `<input type="text">` || node["nodeLabel"] != "Street" {
		t.Fatalf("unexpected node %+v", node)
	}
}

func TestRenderOmitsDisplayValueOnPass(t *testing.T) {
	rep := report.Report{Verdicts: []audit.Verdict{{
		AuditID: audit.AutocompleteID,
		Score:   audit.ScorePass,
	}}}

	out, err := New().Render(context.Background(), rep, report.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	audits := decoded["audits"].([]any)
	first := audits[0].(map[string]any)
	if _, present := first["displayValue"]; present {
		t.Fatalf("displayValue must be omitted on pass")
	}
}

func TestRenderEmptyReportStillEmitsAuditsArray(t *testing.T) {
	out, err := New(WithIndent("  ")).Render(context.Background(), report.Report{}, report.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["audits"].([]any); !ok {
		t.Fatalf("expected audits array, got %T", decoded["audits"])
	}
}
