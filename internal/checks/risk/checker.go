// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package risk scores contract text with a fixed penalty table used for
// portfolio-wide dashboards. Some penalties fire on clause presence
// (arbitration, indemnification) regardless of favorability; this is an
// intentional simplification of the heuristic, not inferred legal
// judgment.
package risk

import (
	"strings"

	"contract-scan/internal/contract"
)

// Risk levels derived from the final score.
const (
	LevelHigh   = "High"
	LevelMedium = "Medium"
	LevelLow    = "Low"
)

// Assessment is the result of scoring one contract.
type Assessment struct {
	Score  int      `json:"score" yaml:"score"`
	Level  string   `json:"level" yaml:"level"`
	Issues []string `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// penaltyRule is one pattern in the fixed penalty table. The table is
// ordered; issues are reported in this order.
type penaltyRule struct {
	issue   string
	penalty int
	applies func(text string) bool
}

var penaltyRules = []penaltyRule{
	{"Unlimited Liability", 30, func(t string) bool {
		return strings.Contains(t, "liability") && strings.Contains(t, "unlimited")
	}},
	{"Missing Termination Notice", 20, func(t string) bool {
		return strings.Contains(t, "terminate") && !strings.Contains(t, "notice")
	}},
	{"Mandatory Arbitration", 15, func(t string) bool {
		return strings.Contains(t, "arbitration")
	}},
	// "indemnif" catches indemnify, indemnification, indemnified.
	{"Indemnification", 15, func(t string) bool {
		return strings.Contains(t, "indemnif")
	}},
	{"Long-Term / Perpetual", 10, func(t string) bool {
		return strings.Contains(t, "perpetual") || strings.Contains(t, "indefinite")
	}},
	{"Force Majeure Missing", 10, func(t string) bool {
		return !strings.Contains(t, "force majeure")
	}},
}

// Assess scores contract text starting at 100 and subtracting a fixed
// penalty per detected pattern, floored at 0. Thresholds: below 60 is
// High risk, below 85 Medium, else Low.
func Assess(text string) Assessment {
	lower := strings.ToLower(text)
	var issues []string
	penalty := 0

	for _, r := range penaltyRules {
		if r.applies(lower) {
			issues = append(issues, r.issue)
			penalty += r.penalty
		}
	}

	score := 100 - penalty
	if score < 0 {
		score = 0
	}

	level := LevelLow
	switch {
	case score < 60:
		level = LevelHigh
	case score < 85:
		level = LevelMedium
	}

	return Assessment{Score: score, Level: level, Issues: issues}
}

// Checker exposes the penalty scorer as an analysis check, one finding
// per detected issue.
type Checker struct{}

// NewChecker creates a risk checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Name returns the check identifier.
func (c *Checker) Name() string {
	return "RISK"
}

// Check reports each penalty pattern detected in the document text.
func (c *Checker) Check(doc contract.Document) []contract.Finding {
	lower := strings.ToLower(doc.Text)
	var findings []contract.Finding
	for _, r := range penaltyRules {
		if !r.applies(lower) {
			continue
		}
		findings = append(findings, contract.Finding{
			Check:    c.Name(),
			Title:    r.issue,
			Severity: severityForPenalty(r.penalty),
			Score:    r.penalty,
			Metadata: map[string]any{"penalty": r.penalty},
		})
	}
	return findings
}

func severityForPenalty(penalty int) string {
	switch {
	case penalty >= 30:
		return contract.SeverityHigh
	case penalty >= 15:
		return contract.SeverityMedium
	default:
		return contract.SeverityLow
	}
}
