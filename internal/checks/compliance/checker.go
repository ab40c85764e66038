// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package compliance applies a fixed battery of heuristic presence/absence
// rules per clause and produces human-readable violation notices. The
// rules are keyword tests, not legal analysis: they flag likely gaps for a
// reviewer, nothing more.
package compliance

import (
	"fmt"
	"sort"
	"strings"

	"contract-scan/internal/contract"
)

// rule is one independent boolean check over lower-cased clause text.
// All rules are always evaluated; a single clause can accumulate several
// violations.
type rule struct {
	name     string
	applies  func(text string) bool
	message  string
	severity string
}

func contains(text string, words ...string) bool {
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

// rules is the fixed table. GDPR-style data rules first, then the
// contract-law rules. Each has the shape "condition A holds AND condition
// B does not".
var rules = []rule{
	{
		name:     "missing-consent",
		applies:  func(t string) bool { return contains(t, "personal data") && !contains(t, "consent") },
		message:  "GDPR: Missing user consent for data processing.",
		severity: contract.SeverityMedium,
	},
	{
		name:     "retention-duration",
		applies:  func(t string) bool { return contains(t, "data retention") && !contains(t, "duration") },
		message:  "GDPR: Retention duration not specified.",
		severity: contract.SeverityMedium,
	},
	{
		name:     "cross-border-transfer",
		applies:  func(t string) bool { return contains(t, "transfer", "outside") && !contains(t, "protection") },
		message:  "GDPR: Cross-border data transfer missing protection clause.",
		severity: contract.SeverityHigh,
	},
	{
		name:     "termination-notice",
		applies:  func(t string) bool { return contains(t, "terminate") && !contains(t, "notice") },
		message:  "Indian Contract Act: Missing notice period in termination clause.",
		severity: contract.SeverityMedium,
	},
	{
		name:     "unlimited-liability",
		applies:  func(t string) bool { return contains(t, "liability", "unlimited") },
		message:  "Indian Contract Act: Unlimited liability may be unenforceable.",
		severity: contract.SeverityHigh,
	},
	{
		name: "dispute-resolution",
		applies: func(t string) bool {
			return contains(t, "dispute") && !contains(t, "arbitration") && !contains(t, "court")
		},
		message:  "Indian Contract Act: Missing dispute resolution mechanism.",
		severity: contract.SeverityMedium,
	},
}

// CheckClause evaluates the rule table against one clause's text and
// returns the violation messages, in rule-table order. An empty result
// means the clause is compliant under these heuristics.
func CheckClause(text string) []string {
	lower := strings.ToLower(text)
	var violations []string
	for _, r := range rules {
		if r.applies(lower) {
			violations = append(violations, r.message)
		}
	}
	return violations
}

// CheckClauses evaluates the rule table for every clause in the mapping.
// String values are checked as-is; nested mappings are flattened by
// joining their leaf values with spaces; anything else is skipped
// silently. Clauses producing zero violations are omitted from the
// result entirely: absence means compliant, not unchecked.
func CheckClauses(clauses map[string]any) map[string][]string {
	flags := make(map[string][]string)
	for name, value := range clauses {
		text, ok := flattenClause(value)
		if !ok {
			continue
		}
		if violations := CheckClause(text); len(violations) > 0 {
			flags[name] = violations
		}
	}
	return flags
}

// flattenClause turns a clause value into checkable text. Nested maps
// join their leaf values with spaces; map keys are visited in sorted
// order so the flattened text is deterministic.
func flattenClause(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprint(v[k]))
		}
		return strings.Join(parts, " "), true
	default:
		return "", false
	}
}

// Checker runs the rule table over every segmented section of a document,
// treating each section heading as the clause name.
type Checker struct{}

// NewChecker creates a compliance checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Name returns the check identifier.
func (c *Checker) Name() string {
	return "COMPLIANCE"
}

// Check evaluates the rule table per section and emits one finding per
// violation.
func (c *Checker) Check(doc contract.Document) []contract.Finding {
	var findings []contract.Finding
	for _, sec := range doc.Sections {
		lower := strings.ToLower(sec.Body)
		for _, r := range rules {
			if !r.applies(lower) {
				continue
			}
			findings = append(findings, contract.Finding{
				Check:    c.Name(),
				Clause:   sec.Heading,
				Title:    r.name,
				Detail:   r.message,
				Severity: r.severity,
			})
		}
	}
	return findings
}
