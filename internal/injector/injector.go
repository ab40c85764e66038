// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package injector inserts new clause text into contract documents at a
// structurally appropriate position, so amendments land inside the
// contract body rather than after signatures or template boilerplate.
package injector

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"contract-scan/internal/anchors"
	"contract-scan/internal/contract"
)

// updateMarker tags inline regulation updates so re-running the inline
// annotator never duplicates them.
const updateMarker = "REGULATION UPDATE APPLIED"

var updateMarkerRE = regexp.MustCompile(`(?i)REGULATION UPDATE APPLIED`)

// Inject inserts clause into original immediately before the first anchor
// located by m, or appends it at the end when no anchor matches. The new
// clause always appears as a visually separated block and no original
// character is dropped beyond trailing whitespace trimmed at the split.
// A nil matcher uses the default anchor list.
func Inject(original, clause string, m *anchors.PriorityMatcher) string {
	if m == nil {
		m = anchors.Default()
	}
	if off, ok := m.Locate(original); ok {
		prefix := strings.TrimRight(original[:off], " \t\r\n")
		return prefix + "\n\n" + clause + "\n\n" + original[off:]
	}
	return original + "\n\n" + clause
}

// BuildUpdateClause renders the compliance notice clause pushed into
// contracts affected by a new regulation. The matched keywords are quoted
// back so the amendment states what triggered it.
func BuildUpdateClause(reg contract.Regulation, matched []string, now time.Time) string {
	return fmt.Sprintf(
		"5. COMPLIANCE & DATA NOTICE (Added: %s)\n"+
			"5.1 Pursuant to the %s, Developer agrees to implement strict transparency measures regarding '%s'.\n"+
			"5.2 Immediate written notice shall be provided to Client in the event of any regulatory inquiry or data breach.",
		now.Format("2006-01-02"), reg.Title, strings.Join(matched, ", "))
}

// ApplyInlineUpdates annotates each section whose text mentions a
// regulation keyword with an inline update block. Sections already
// carrying an update marker pass through untouched, which makes the
// operation idempotent. Returns the annotated sections and whether any
// update was inserted.
//
// This is the legacy per-section annotation path; new code should prefer
// Inject with BuildUpdateClause.
func ApplyInlineUpdates(secs []contract.Section, regs []contract.Regulation) ([]contract.Section, bool) {
	out := make([]contract.Section, 0, len(secs))
	inserted := false

	for _, sec := range secs {
		if updateMarkerRE.MatchString(sec.Body) {
			out = append(out, sec)
			continue
		}

		clean := strings.TrimSpace(sec.Body)
		secText := strings.ToLower(sec.Heading + "\n" + clean)
		var updates strings.Builder

		for _, reg := range regs {
			for _, kw := range reg.Keywords {
				if !strings.Contains(secText, strings.ToLower(kw)) {
					continue
				}
				fmt.Fprintf(&updates,
					"%s (%s)\nTitle: %s\nSuggested Update: Parties agree to implement transparency measures regarding %s.\n--------------------------------------------------------------\n\n",
					updateMarker, reg.DatePublished, reg.Title, kw)
				inserted = true
				// One update per regulation per section.
				break
			}
		}

		body := clean
		if updates.Len() > 0 {
			body = strings.TrimSpace(clean + "\n\n" + strings.TrimSpace(updates.String()))
		}
		out = append(out, contract.Section{Heading: sec.Heading, Body: body})
	}

	return out, inserted
}
