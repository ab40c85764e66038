// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"contract-scan/internal/checks/risk"
	"contract-scan/internal/contract"
	"contract-scan/internal/formatters"
)

func allSeverities() map[string]bool {
	return map[string]bool{"high": true, "medium": true, "low": true}
}

func sampleFindings() []contract.Finding {
	return []contract.Finding{
		{
			Check:    "COMPLIANCE",
			Clause:   "LIMITATION OF LIABILITY",
			Title:    "unlimited-liability",
			Detail:   "Indian Contract Act: Unlimited liability may be unenforceable.",
			Severity: contract.SeverityHigh,
		},
		{
			Check:    "RISK",
			Title:    "Force Majeure Missing",
			Severity: contract.SeverityLow,
			Score:    10,
		},
	}
}

func TestFormat_SummaryTable(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(contract.Document{}, sampleFindings(), nil, formatters.FormatterOptions{
		SeverityLevel: allSeverities(),
		NoColor:       true,
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"SEVERITY", "CHECK", "CLAUSE",
		"HIGH", "COMPLIANCE", "LIMITATION OF LIABILITY",
		"Unlimited liability may be unenforceable",
		"2 issue(s): 1 high, 0 medium, 1 low",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormat_SortsHighFirst(t *testing.T) {
	f := NewFormatter()
	findings := []contract.Finding{
		{Check: "RISK", Title: "low issue", Severity: contract.SeverityLow},
		{Check: "RISK", Title: "high issue", Severity: contract.SeverityHigh},
	}
	out, err := f.Format(contract.Document{}, findings, nil, formatters.FormatterOptions{
		SeverityLevel: allSeverities(),
		NoColor:       true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Index(out, "high issue") > strings.Index(out, "low issue") {
		t.Errorf("high severity finding should come first:\n%s", out)
	}
}

func TestFormat_SeverityFilter(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(contract.Document{}, sampleFindings(), nil, formatters.FormatterOptions{
		SeverityLevel: map[string]bool{"medium": true},
		NoColor:       true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No issues found at the specified severity levels.") {
		t.Errorf("expected filtered-empty message:\n%s", out)
	}
}

func TestFormat_NoFindings(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(contract.Document{}, nil, nil, formatters.FormatterOptions{
		SeverityLevel: allSeverities(),
		NoColor:       true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No issues found.") {
		t.Errorf("expected no-issues message:\n%s", out)
	}
}

func TestFormat_RiskBlock(t *testing.T) {
	f := NewFormatter()
	assessment := &risk.Assessment{
		Score:  40,
		Level:  risk.LevelHigh,
		Issues: []string{"Unlimited Liability", "Force Majeure Missing"},
	}
	out, err := f.Format(contract.Document{}, nil, assessment, formatters.FormatterOptions{
		SeverityLevel: allSeverities(),
		NoColor:       true,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Risk score: 40/100", "High risk", "- Unlimited Liability", "- Force Majeure Missing"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormat_SectionsView(t *testing.T) {
	f := NewFormatter()
	doc := contract.Document{
		Sections: []contract.Section{
			{Heading: contract.PreambleHeading, Body: "intro"},
			{Heading: "TERM AND TERMINATION", Body: "terms"},
		},
	}
	out, err := f.Format(doc, nil, nil, formatters.FormatterOptions{
		SeverityLevel: allSeverities(),
		NoColor:       true,
		ShowSections:  true,
		Verbose:       true,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Sections (2):", "TERM AND TERMINATION", "terms"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
