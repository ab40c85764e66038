// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package anchors locates structural insertion points in contract text by
// evaluating an ordered list of case-insensitive patterns. Ordering is
// strict priority: the first pattern with any match wins, even when a
// later, more specific pattern would also match.
package anchors

import (
	"fmt"
	"regexp"
)

// defaultPatterns encodes the business priority for clause insertion:
// sample/template boilerplate markers first (they mark the end of real
// contract content), then specific legal headers, then generic fallback
// markers before signatures and annexes. The ordering is part of the
// contract and must not be rearranged.
//
// Leading whitespace on a matched line is tolerated as horizontal space
// only; letting it swallow newlines would move the reported offset onto
// the preceding blank line and break clean splitting.
var defaultPatterns = []string{
	// Priority: markers that appear right after the last real clause in
	// template documents.
	`(?im)^[ \t]*This\s+is\s+a\s+sample`,
	`(?im)^[ \t]*USER\s+GUIDE`,

	// Standard legal headers, with optional numeric prefixes.
	`(?im)^[ \t]*\d*\.?[ \t]*TERM\s+AND\s+TERMINATION`,
	`(?im)^[ \t]*\d*\.?[ \t]*WARRANTIES`,
	`(?im)^[ \t]*\d*\.?[ \t]*LIMITATION\s+OF\s+LIABILITY`,
	`(?im)^[ \t]*\d*\.?[ \t]*GENERAL\s+PROVISIONS`,
	`(?im)^[ \t]*\d*\.?[ \t]*INDEMNIFICATION`,

	// Fallback markers: insert before signatures/annexes if nothing else
	// matched.
	`(?im)^[ \t]*IN\s+WITNESS\s+WHEREOF`,
	`(?im)^[ \t]*SIGNATURES?`,
	`(?im)^[ \t]*ANNEXES`,
	`(?im)^[ \t]*GENERAL\s+RECOMMENDATIONS`,
}

// PriorityMatcher evaluates an ordered list of anchor patterns against
// document text. The zero value is unusable; construct with New or
// Default.
type PriorityMatcher struct {
	patterns []*regexp.Regexp
	sources  []string
}

// New compiles the given patterns into a PriorityMatcher, preserving
// their order. Patterns are expected to carry their own flags (the
// default set uses (?im)).
func New(patterns []string) (*PriorityMatcher, error) {
	m := &PriorityMatcher{
		patterns: make([]*regexp.Regexp, 0, len(patterns)),
		sources:  make([]string, 0, len(patterns)),
	}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid anchor pattern %q: %w", p, err)
		}
		m.patterns = append(m.patterns, re)
		m.sources = append(m.sources, p)
	}
	return m, nil
}

// Default returns a matcher over the built-in anchor pattern list.
func Default() *PriorityMatcher {
	m, err := New(defaultPatterns)
	if err != nil {
		// The built-in patterns are compile-time constants; failing to
		// compile them is a programming error.
		panic(err)
	}
	return m
}

// Locate scans text against the patterns in priority order and returns
// the character offset of the first match of the first matching pattern.
// ok is false when no pattern in the entire list matches.
func (m *PriorityMatcher) Locate(text string) (offset int, ok bool) {
	for _, re := range m.patterns {
		if loc := re.FindStringIndex(text); loc != nil {
			return loc[0], true
		}
	}
	return -1, false
}

// Patterns returns the source expressions in priority order.
func (m *PriorityMatcher) Patterns() []string {
	out := make([]string, len(m.sources))
	copy(out, m.sources)
	return out
}
