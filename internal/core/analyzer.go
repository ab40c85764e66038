// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"os"
	"strings"
	"time"

	"contract-scan/internal/anchors"
	"contract-scan/internal/checks/risk"
	"contract-scan/internal/contract"
	"contract-scan/internal/extract"
	"contract-scan/internal/injector"
	"contract-scan/internal/observability"
	"contract-scan/internal/sections"
)

// checkOrder fixes the order checkers run and report in.
var checkOrder = []string{"COMPLIANCE", "REGULATION", "RISK"}

// AnalyzeConfig holds configuration for analysis operations.
type AnalyzeConfig struct {
	FilePath    string
	Text        string // analyzed instead of FilePath when non-empty
	Checks      []string
	Regulations []contract.Regulation
	Debug       bool
	Verbose     bool
}

// AnalyzeResult holds the results of an analysis operation.
type AnalyzeResult struct {
	Document       contract.Document
	Findings       []contract.Finding
	Risk           *risk.Assessment
	ProcessedFiles int
}

// AnalyzeFile extracts text from the configured file and analyzes it.
func AnalyzeFile(analyzeConfig AnalyzeConfig) (*AnalyzeResult, error) {
	if analyzeConfig.FilePath == "" {
		return nil, fmt.Errorf("no file path provided")
	}

	text, err := extract.ReadContractText(analyzeConfig.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read contract: %w", err)
	}
	analyzeConfig.Text = text

	return AnalyzeText(analyzeConfig)
}

// AnalyzeText performs the core analysis logic shared by the CLI and the
// feed watcher. The text is segmented once and every enabled checker runs
// over the same document view.
func AnalyzeText(analyzeConfig AnalyzeConfig) (*AnalyzeResult, error) {
	// Build observer
	observer := observability.NewStandardObserver(observability.ObservabilityMetrics, os.Stderr)
	if analyzeConfig.Debug {
		debugObs := observability.NewDebugObserver(os.Stderr)
		observer = debugObs.StandardObserver
		observer.DebugObserver = debugObs
	}
	done := observer.StartTiming("core", "analyze", analyzeConfig.FilePath)

	doc := contract.Document{
		Path:        analyzeConfig.FilePath,
		Text:        analyzeConfig.Text,
		Sections:    sections.Split(analyzeConfig.Text),
		Regulations: analyzeConfig.Regulations,
	}

	enabledChecks := ParseChecksToRun(analyzeConfig.Checks)
	checkers := BuildCheckerSet(enabledChecks)

	var findings []contract.Finding
	for _, name := range checkOrder {
		checker, ok := checkers[name]
		if !ok {
			continue
		}
		findings = append(findings, checker.Check(doc)...)
	}

	result := &AnalyzeResult{
		Document:       doc,
		Findings:       findings,
		ProcessedFiles: 1,
	}
	if enabledChecks["RISK"] {
		assessment := risk.Assess(doc.Text)
		result.Risk = &assessment
	}

	done(true, map[string]interface{}{"finding_count": len(findings)})
	return result, nil
}

// ApplyRegulationUpdate builds the standard compliance clause for a matched
// regulation and injects it into text at the best anchor position. Pass nil
// for m to use the default anchor patterns.
func ApplyRegulationUpdate(text string, reg contract.Regulation, matched []string, now time.Time, m *anchors.PriorityMatcher) string {
	clause := injector.BuildUpdateClause(reg, matched, now)
	return injector.Inject(text, clause, m)
}

// ParseChecksToRun converts a slice of check names into an enabled-checks map.
// An empty slice or ["all"] enables every check.
func ParseChecksToRun(checks []string) map[string]bool {
	result := map[string]bool{
		"COMPLIANCE": false,
		"REGULATION": false,
		"RISK":       false,
	}

	if len(checks) == 0 || (len(checks) == 1 && checks[0] == "all") {
		for key := range result {
			result[key] = true
		}
		return result
	}

	for _, check := range checks {
		if checkStr := strings.ToUpper(strings.TrimSpace(check)); checkStr != "" {
			if _, exists := result[checkStr]; exists {
				result[checkStr] = true
			}
		}
	}

	return result
}

// ParseSeverityLevels converts a comma-separated severity level string into a map.
// "all" or empty string enables every level.
func ParseSeverityLevels(levels string) map[string]bool {
	result := map[string]bool{
		"high":   false,
		"medium": false,
		"low":    false,
	}

	if levels == "all" || levels == "" {
		result["high"] = true
		result["medium"] = true
		result["low"] = true
		return result
	}

	for _, level := range strings.Split(levels, ",") {
		switch strings.ToLower(strings.TrimSpace(level)) {
		case "high", "medium", "low":
			result[strings.ToLower(strings.TrimSpace(level))] = true
		}
	}

	return result
}
