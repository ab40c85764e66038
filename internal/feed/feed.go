// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package feed simulates an external regulation feed. It cycles through a
// small set of canned regulations so demos and tests see new rules
// arriving over time; the analysis core never fetches regulations itself.
package feed

import (
	"fmt"
	"time"

	"contract-scan/internal/contract"
)

// Simulator produces regulation records not yet present in the tracked
// set. The clock is injectable for tests.
type Simulator struct {
	now func() time.Time
}

// NewSimulator creates a feed simulator using the wall clock.
func NewSimulator() *Simulator {
	return &Simulator{now: time.Now}
}

// NewSimulatorAt creates a feed simulator with a fixed clock.
func NewSimulatorAt(now func() time.Time) *Simulator {
	return &Simulator{now: now}
}

// Next returns the first canned regulation whose title is not already in
// existing, or nil when every canned regulation is tracked. Ids embed the
// fetch time so successive fetches stay distinguishable.
func (s *Simulator) Next(existing []contract.Regulation) *contract.Regulation {
	now := s.now()
	published := now.Format("2006-01-02 15:04:05")
	unix := now.Unix()

	options := []contract.Regulation{
		{
			ID:            fmt.Sprintf("reg-privacy-%d", unix),
			Title:         "New Data Privacy Transparency Rule",
			Jurisdiction:  "GLOBAL",
			DatePublished: published,
			Summary:       "Requires clear privacy notices and transparency about automated profiling.",
			Keywords:      []string{"privacy", "transparency", "profiling", "notice", "personal data"},
			SourceURL:     "https://example.org/privacy-rule",
		},
		{
			ID:            fmt.Sprintf("reg-ai-%d", unix),
			Title:         "AI Algorithmic Accountability Act",
			Jurisdiction:  "EU",
			DatePublished: published,
			Summary:       "Mandates audit trails for AI decisions affecting user termination.",
			Keywords:      []string{"artificial intelligence", "automated decision", "algorithm", "terminate"},
			SourceURL:     "https://example.org/ai-act",
		},
		{
			ID:            fmt.Sprintf("reg-liab-%d", unix),
			Title:         "Digital Services Liability Standard",
			Jurisdiction:  "USA",
			DatePublished: published,
			Summary:       "Prevents unlimited liability clauses in digital service contracts.",
			Keywords:      []string{"liability", "indemnification", "damages", "unlimited"},
			SourceURL:     "https://example.org/liability-std",
		},
	}

	tracked := make(map[string]bool, len(existing))
	for _, reg := range existing {
		tracked[reg.Title] = true
	}

	for _, opt := range options {
		if !tracked[opt.Title] {
			reg := opt
			return &reg
		}
	}
	return nil
}
