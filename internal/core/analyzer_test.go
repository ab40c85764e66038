// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"strings"
	"testing"
	"time"

	"contract-scan/internal/contract"
)

func TestParseChecksToRun_All(t *testing.T) {
	cases := []struct {
		name  string
		input []string
	}{
		{"empty slice enables all", []string{}},
		{"explicit all enables all", []string{"all"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := ParseChecksToRun(tc.input)
			for k, v := range result {
				if !v {
					t.Errorf("expected check %q to be enabled, got false", k)
				}
			}
		})
	}
}

func TestParseChecksToRun_Specific(t *testing.T) {
	result := ParseChecksToRun([]string{"COMPLIANCE", "RISK"})
	if !result["COMPLIANCE"] {
		t.Error("COMPLIANCE should be enabled")
	}
	if !result["RISK"] {
		t.Error("RISK should be enabled")
	}
	if result["REGULATION"] {
		t.Error("REGULATION should not be enabled")
	}
}

func TestParseChecksToRun_UnknownCheckIgnored(t *testing.T) {
	result := ParseChecksToRun([]string{"UNKNOWN_CHECK", "COMPLIANCE"})
	if !result["COMPLIANCE"] {
		t.Error("COMPLIANCE should be enabled")
	}
	// Unknown check should not appear in result
	if result["UNKNOWN_CHECK"] {
		t.Error("UNKNOWN_CHECK should not be in result")
	}
}

func TestParseChecksToRun_WhitespaceAndCase(t *testing.T) {
	result := ParseChecksToRun([]string{" compliance ", " Risk "})
	if !result["COMPLIANCE"] {
		t.Error("COMPLIANCE should be enabled after trimming and uppercasing")
	}
	if !result["RISK"] {
		t.Error("RISK should be enabled after trimming and uppercasing")
	}
}

func TestParseSeverityLevels_All(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"all keyword", "all"},
		{"empty string", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := ParseSeverityLevels(tc.input)
			for _, level := range []string{"high", "medium", "low"} {
				if !result[level] {
					t.Errorf("expected level %q to be enabled", level)
				}
			}
		})
	}
}

func TestParseSeverityLevels_Specific(t *testing.T) {
	result := ParseSeverityLevels("high,medium")
	if !result["high"] {
		t.Error("high should be enabled")
	}
	if !result["medium"] {
		t.Error("medium should be enabled")
	}
	if result["low"] {
		t.Error("low should not be enabled")
	}
}

func TestParseSeverityLevels_CaseInsensitive(t *testing.T) {
	result := ParseSeverityLevels("HIGH,Medium,LOW")
	for _, level := range []string{"high", "medium", "low"} {
		if !result[level] {
			t.Errorf("expected level %q to be enabled (case-insensitive)", level)
		}
	}
}

func TestBuildCheckerSet_AllEnabled(t *testing.T) {
	checks := ParseChecksToRun([]string{"all"})
	checkers := BuildCheckerSet(checks)

	for _, name := range []string{"COMPLIANCE", "REGULATION", "RISK"} {
		if _, ok := checkers[name]; !ok {
			t.Errorf("expected checker %q to be present", name)
		}
	}
}

func TestBuildCheckerSet_Filtered(t *testing.T) {
	checks := ParseChecksToRun([]string{"RISK"})
	checkers := BuildCheckerSet(checks)

	if _, ok := checkers["RISK"]; !ok {
		t.Error("RISK checker should be present")
	}
	if _, ok := checkers["COMPLIANCE"]; ok {
		t.Error("COMPLIANCE checker should not be present")
	}
	if len(checkers) != 1 {
		t.Errorf("expected 1 checker, got %d", len(checkers))
	}
}

const sampleContract = `This agreement is made between the parties.

TERM AND TERMINATION
Either party may terminate this agreement at any time.

LIMITATION OF LIABILITY
The Client shall bear unlimited liability for all damages arising here.
`

func TestAnalyzeText_RunsEnabledCheckers(t *testing.T) {
	result, err := AnalyzeText(AnalyzeConfig{
		Text:   sampleContract,
		Checks: []string{"all"},
		Regulations: []contract.Regulation{
			{ID: "reg-1", Title: "Liability Standard", Keywords: []string{"liability", "damages"}},
		},
	})
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	if result.ProcessedFiles != 1 {
		t.Errorf("ProcessedFiles = %d, want 1", result.ProcessedFiles)
	}
	if len(result.Document.Sections) == 0 {
		t.Error("document should be segmented into sections")
	}

	seen := map[string]bool{}
	for _, f := range result.Findings {
		seen[f.Check] = true
	}
	for _, want := range []string{"COMPLIANCE", "REGULATION", "RISK"} {
		if !seen[want] {
			t.Errorf("expected at least one %s finding", want)
		}
	}

	if result.Risk == nil {
		t.Fatal("risk assessment should be populated when RISK is enabled")
	}
	// unlimited liability (-30), termination without notice (-20),
	// no force majeure clause (-10)
	if result.Risk.Score != 40 {
		t.Errorf("risk score = %d, want 40", result.Risk.Score)
	}
}

func TestAnalyzeText_RiskDisabled(t *testing.T) {
	result, err := AnalyzeText(AnalyzeConfig{
		Text:   sampleContract,
		Checks: []string{"COMPLIANCE"},
	})
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}
	if result.Risk != nil {
		t.Error("risk assessment should be nil when RISK is not enabled")
	}
	for _, f := range result.Findings {
		if f.Check != "COMPLIANCE" {
			t.Errorf("unexpected finding from %s", f.Check)
		}
	}
}

func TestAnalyzeFile_MissingPath(t *testing.T) {
	if _, err := AnalyzeFile(AnalyzeConfig{}); err == nil {
		t.Error("expected error for empty file path")
	}
}

func TestApplyRegulationUpdate_InjectsBeforeAnchor(t *testing.T) {
	text := "Preamble here.\n\nTERM AND TERMINATION\nNotice terms."
	reg := contract.Regulation{Title: "New Data Privacy Transparency Rule"}
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	updated := ApplyRegulationUpdate(text, reg, []string{"privacy"}, now, nil)

	idxClause := strings.Index(updated, "COMPLIANCE & DATA NOTICE")
	idxAnchor := strings.Index(updated, "TERM AND TERMINATION")
	if idxClause < 0 || idxAnchor < 0 {
		t.Fatalf("updated text missing clause or anchor:\n%s", updated)
	}
	if idxClause > idxAnchor {
		t.Error("clause should be injected before the termination heading")
	}
}
