// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package regulation scores tracked regulations against contract text by
// naive case-insensitive keyword containment.
package regulation

import (
	"strings"

	"contract-scan/internal/contract"
)

// Score returns the match score for one regulation against document text,
// along with the keywords that were found. Each distinct keyword counts
// once regardless of how often it occurs, and contributes two points.
// Keyword order in the result follows the regulation's own ordering, not
// document order. A regulation with no keywords scores zero.
func Score(reg contract.Regulation, text string) (int, []string) {
	lower := strings.ToLower(text)
	var matched []string
	for _, kw := range reg.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	return 2 * len(matched), matched
}

// Affects reports whether a regulation matches the document at all: any
// single keyword hit flags the contract, with no density or position
// requirement.
func Affects(reg contract.Regulation, text string) bool {
	score, _ := Score(reg, text)
	return score > 0
}

// Checker wraps keyword scoring as an analysis check, producing one
// finding per regulation that matches the document.
type Checker struct{}

// NewChecker creates a regulation match checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Name returns the check identifier.
func (c *Checker) Name() string {
	return "REGULATION"
}

// Check scores every tracked regulation against the document text.
func (c *Checker) Check(doc contract.Document) []contract.Finding {
	var findings []contract.Finding
	for _, reg := range doc.Regulations {
		score, matched := Score(reg, doc.Text)
		if score == 0 {
			continue
		}
		findings = append(findings, contract.Finding{
			Check:    c.Name(),
			Title:    reg.Title,
			Detail:   reg.Summary,
			Severity: severityForHits(len(matched)),
			Score:    score,
			Keywords: matched,
			Metadata: map[string]any{
				"regulation_id": reg.ID,
				"jurisdiction":  reg.Jurisdiction,
			},
		})
	}
	return findings
}

// severityForHits buckets keyword hit counts for display. The match
// contract itself is binary (score > 0); this only orders the report.
func severityForHits(hits int) string {
	switch {
	case hits >= 3:
		return contract.SeverityHigh
	case hits == 2:
		return contract.SeverityMedium
	default:
		return contract.SeverityLow
	}
}
