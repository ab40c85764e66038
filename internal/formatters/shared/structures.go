// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"contract-scan/internal/checks/risk"
	"contract-scan/internal/contract"
	"contract-scan/internal/formatters"
)

// Report represents the top-level response structure for JSON/YAML output
type Report struct {
	Document string           `json:"document,omitempty" yaml:"document,omitempty"`
	Sections []ReportSection  `json:"sections,omitempty" yaml:"sections,omitempty"`
	Findings []ReportFinding  `json:"findings" yaml:"findings"`
	Risk     *risk.Assessment `json:"risk,omitempty" yaml:"risk,omitempty"`
	Summary  ReportSummary    `json:"summary" yaml:"summary"`
}

// ReportSection is one segmented section in the report. Body is only
// populated in verbose mode.
type ReportSection struct {
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body,omitempty" yaml:"body,omitempty"`
}

// ReportFinding represents a single finding in JSON/YAML format
type ReportFinding struct {
	Check    string                 `json:"check" yaml:"check"`
	Clause   string                 `json:"clause,omitempty" yaml:"clause,omitempty"`
	Title    string                 `json:"title" yaml:"title"`
	Detail   string                 `json:"detail,omitempty" yaml:"detail,omitempty"`
	Severity string                 `json:"severity" yaml:"severity"`
	Score    int                    `json:"score,omitempty" yaml:"score,omitempty"`
	Keywords []string               `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ReportSummary counts findings per severity level
type ReportSummary struct {
	Total  int `json:"total" yaml:"total"`
	High   int `json:"high" yaml:"high"`
	Medium int `json:"medium" yaml:"medium"`
	Low    int `json:"low" yaml:"low"`
}

// FilterFindingsBySeverity filters findings based on severity level settings
func FilterFindingsBySeverity(findings []contract.Finding, options formatters.FormatterOptions) []contract.Finding {
	var filtered []contract.Finding
	for _, finding := range findings {
		if options.SeverityLevel[finding.Severity] {
			filtered = append(filtered, finding)
		}
	}
	return filtered
}

// ConvertToReport converts analysis results to the shared report structure
func ConvertToReport(doc contract.Document, findings []contract.Finding, assessment *risk.Assessment, options formatters.FormatterOptions) Report {
	var reportFindings []ReportFinding
	summary := ReportSummary{}

	for _, finding := range findings {
		metadata := make(map[string]interface{})
		for k, v := range finding.Metadata {
			metadata[k] = v
		}
		if len(metadata) == 0 {
			metadata = nil
		}

		reportFindings = append(reportFindings, ReportFinding{
			Check:    finding.Check,
			Clause:   finding.Clause,
			Title:    finding.Title,
			Detail:   finding.Detail,
			Severity: finding.Severity,
			Score:    finding.Score,
			Keywords: finding.Keywords,
			Metadata: metadata,
		})

		summary.Total++
		switch finding.Severity {
		case contract.SeverityHigh:
			summary.High++
		case contract.SeverityMedium:
			summary.Medium++
		case contract.SeverityLow:
			summary.Low++
		}
	}

	report := Report{
		Document: doc.Path,
		Findings: reportFindings,
		Risk:     assessment,
		Summary:  summary,
	}

	if options.ShowSections {
		for _, sec := range doc.Sections {
			rs := ReportSection{Heading: sec.Heading}
			if options.Verbose {
				rs.Body = sec.Body
			}
			report.Sections = append(report.Sections, rs)
		}
	}

	return report
}
