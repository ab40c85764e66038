// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sections segments contract text into (heading, body) pairs using
// an ALL-CAPS heading heuristic, and reassembles them into a readable
// document. Reassembly preserves heading and body content and ordering but
// is intentionally lossy with respect to exact original spacing.
package sections

import (
	"regexp"
	"strings"

	"contract-scan/internal/contract"
)

// headingPattern matches lines composed entirely of uppercase letters,
// digits, spaces and the punctuation set {-, &, (, ), ,}, at least three
// characters long. This is a heuristic, not a grammar: short numeric or
// punctuation-only lines (a lone page number, a divider) also satisfy it
// and are classified as headings. That is a known limitation of the rule,
// kept deliberately rather than papered over.
var headingPattern = regexp.MustCompile(`^[A-Z0-9 \-&(),]{3,}$`)

// IsHeading reports whether a single line of text, already trimmed of
// leading and trailing whitespace, is a section heading. Empty lines and
// lines containing any lowercase letter are never headings; numbered
// sub-bullets like "1. Confidentiality:" are not headings either.
func IsHeading(line string) bool {
	return headingPattern.MatchString(line)
}

// Split partitions document text into an ordered sequence of sections.
// Text preceding the first detected heading is collected under the
// "Preamble" heading. Splitting never fails: an empty input yields a
// single empty Preamble section.
func Split(text string) []contract.Section {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " \t\r")
	}

	var result []contract.Section
	heading := contract.PreambleHeading
	var buf []string

	for _, ln := range lines {
		trimmed := strings.TrimSpace(ln)
		if trimmed == "" {
			buf = append(buf, "")
			continue
		}

		if IsHeading(trimmed) {
			// Close out the current section. Leading consecutive headings
			// collapse: nothing is recorded until some body text or a prior
			// section exists.
			if len(buf) > 0 || len(result) > 0 {
				result = append(result, contract.Section{
					Heading: strings.TrimSpace(heading),
					Body:    strings.TrimSpace(strings.Join(buf, "\n")),
				})
			}
			heading = trimmed
			buf = nil
			continue
		}

		buf = append(buf, ln)
	}

	// Flush the final section unconditionally so the result always
	// contains at least one section.
	result = append(result, contract.Section{
		Heading: strings.TrimSpace(heading),
		Body:    strings.TrimSpace(strings.Join(buf, "\n")),
	})
	return result
}

// Join reassembles sections into a single document string. Headings other
// than "Preamble" are emitted on their own line, followed by the body when
// non-empty and a blank separator line. This is not a byte-exact inverse
// of Split.
func Join(secs []contract.Section) string {
	var out []string
	for _, s := range secs {
		if s.Heading != "" && s.Heading != contract.PreambleHeading {
			out = append(out, s.Heading)
		}
		if s.Body != "" {
			out = append(out, s.Body)
		}
		out = append(out, "")
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
