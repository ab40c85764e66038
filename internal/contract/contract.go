// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package contract

// PreambleHeading is the heading assigned to text that precedes the first
// detected section heading in a document.
const PreambleHeading = "Preamble"

// Severity levels for findings
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Section represents one (heading, body) pair produced by segmenting
// contract text on detected headings. Sections are a transient view over a
// document string and are recomputed on every segmentation call.
type Section struct {
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body" yaml:"body"`
}

// Regulation is an external rule record matched against contract content.
// Keywords is the only field the matcher consults; a missing or empty
// keyword set simply contributes zero matches.
type Regulation struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Jurisdiction  string   `json:"jurisdiction" yaml:"jurisdiction"`
	DatePublished string   `json:"date_published" yaml:"date_published"`
	Summary       string   `json:"summary" yaml:"summary"`
	Keywords      []string `json:"keywords" yaml:"keywords"`
	SourceURL     string   `json:"source_url" yaml:"source_url"`
}

// Document is the unit of analysis handed to checkers. Text is the raw
// contract text; Sections is the segmented view of the same text.
// Regulations carries the tracked regulation records for keyword matching.
type Document struct {
	Path        string
	Text        string
	Sections    []Section
	Regulations []Regulation
}

// Finding represents a single issue raised by a checker against a document.
type Finding struct {
	Check    string         `json:"check"`
	Clause   string         `json:"clause,omitempty"`
	Title    string         `json:"title"`
	Detail   string         `json:"detail,omitempty"`
	Severity string         `json:"severity"`
	Score    int            `json:"score,omitempty"`
	Keywords []string       `json:"keywords,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Checker is implemented by every analysis check that inspects a document
// and reports findings. Checkers are pure over their input: they hold no
// mutable state between calls and never touch the filesystem or network.
type Checker interface {
	// Name returns the check identifier (e.g. "COMPLIANCE")
	Name() string

	// Check inspects the document and returns zero or more findings
	Check(doc Document) []Finding
}
