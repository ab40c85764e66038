// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parties detects the contracting parties in raw contract text
// with an ordered battery of patterns; the first pattern that matches
// wins.
package parties

import (
	"regexp"
	"strings"
)

var patterns = []*regexp.Regexp{
	// "between AlphaTech ("Provider") and BetaSoft ("Client")"
	regexp.MustCompile(`(?is)between\s+(.+?)\s*\((?:"|“)?(?:provider|first party)(?:"|”)?\)\s*and\s+(.+?)\s*\((?:"|“)?(?:client|second party)(?:"|”)?\)`),
	// "between AlphaTech and BetaSoft, collectively ..."
	regexp.MustCompile(`(?is)between\s+(.+?)\s+and\s+(.+?)\s*,?\s*(?:collectively|hereinafter)`),
	// "Parties involved in this agreement: AlphaTech and BetaSoft"
	regexp.MustCompile(`(?is)parties involved[^:]*:\s*(.+?)\s+and\s+(.+?)\b`),
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// Find returns the two contracting parties detected in text. ok is false
// when no pattern matches.
func Find(text string) (first, second string, ok bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return cleanup(m[1]), cleanup(m[2]), true
	}
	return "", "", false
}

// cleanup collapses internal whitespace and strips surrounding quotes.
func cleanup(s string) string {
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.Trim(s, ` "'’“”`)
}
