// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"sort"
	"strings"

	"contract-scan/internal/checks/risk"
	"contract-scan/internal/contract"
	"contract-scan/internal/formatters"
	"contract-scan/internal/formatters/shared"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

// severityRank orders severities for display: high first, then medium, low.
var severityRank = map[string]int{
	contract.SeverityHigh:   0,
	contract.SeverityMedium: 1,
	contract.SeverityLow:    2,
}

func (f *Formatter) Format(doc contract.Document, findings []contract.Finding, assessment *risk.Assessment, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	filtered := shared.FilterFindingsBySeverity(findings, options)

	var builder strings.Builder

	if options.ShowSections {
		f.appendSections(&builder, doc, options)
	}

	if len(filtered) == 0 {
		if len(findings) == 0 {
			builder.WriteString("No issues found.\n")
		} else {
			builder.WriteString("No issues found at the specified severity levels.\n")
		}
	} else {
		f.sortFindings(filtered)
		if options.Verbose {
			for _, finding := range filtered {
				f.appendDetailedFinding(&builder, finding, options)
			}
		} else {
			f.appendHeaders(&builder, options)
			for _, finding := range filtered {
				f.appendSummaryLine(&builder, finding, options)
			}
		}
		f.appendSummary(&builder, filtered, options)
	}

	if assessment != nil {
		f.appendRisk(&builder, assessment, options)
	}

	return builder.String(), nil
}

// sortFindings orders findings by severity (high, medium, low), keeping
// the checker order within each level.
func (f *Formatter) sortFindings(findings []contract.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		return severityRank[findings[i].Severity] < severityRank[findings[j].Severity]
	})
}

// appendHeaders adds column headers to the string builder
func (f *Formatter) appendHeaders(builder *strings.Builder, options formatters.FormatterOptions) {
	headerStr := fmt.Sprintf("%-10s %-12s %-28s %s\n", "SEVERITY", "CHECK", "CLAUSE", "ISSUE")
	if !options.NoColor {
		headerStr = f.colors["white"].Sprintf("%-10s %-12s %-28s %s\n", "SEVERITY", "CHECK", "CLAUSE", "ISSUE")
	}
	builder.WriteString(headerStr)

	separator := strings.Repeat("-", 80) + "\n"
	if !options.NoColor {
		separator = f.colors["white"].Sprint(strings.Repeat("-", 80) + "\n")
	}
	builder.WriteString(separator)
}

// appendSummaryLine adds a single line summary to the string builder
func (f *Formatter) appendSummaryLine(builder *strings.Builder, finding contract.Finding, options formatters.FormatterOptions) {
	issue := finding.Detail
	if issue == "" {
		issue = finding.Title
	}

	clause := finding.Clause
	if clause == "" {
		clause = "-"
	}
	if len([]rune(clause)) > 28 {
		clause = string([]rune(clause)[:25]) + "..."
	}

	level := strings.ToUpper(finding.Severity)
	line := fmt.Sprintf("%-10s %-12s %-28s %s\n", level, finding.Check, clause, issue)
	if !options.NoColor {
		line = f.severityColor(finding.Severity).Sprintf("%-10s", level) +
			fmt.Sprintf(" %-12s %-28s %s\n", finding.Check, clause, issue)
	}
	builder.WriteString(line)
}

// appendDetailedFinding prints one finding in verbose multi-line form
func (f *Formatter) appendDetailedFinding(builder *strings.Builder, finding contract.Finding, options formatters.FormatterOptions) {
	title := finding.Title
	if !options.NoColor {
		title = f.severityColor(finding.Severity).Sprint(finding.Title)
	}
	builder.WriteString(fmt.Sprintf("%s [%s, %s severity]\n", title, finding.Check, finding.Severity))

	if finding.Clause != "" {
		builder.WriteString(fmt.Sprintf("  Clause:   %s\n", finding.Clause))
	}
	if finding.Detail != "" {
		builder.WriteString(fmt.Sprintf("  Detail:   %s\n", finding.Detail))
	}
	if finding.Score != 0 {
		builder.WriteString(fmt.Sprintf("  Score:    %d\n", finding.Score))
	}
	if len(finding.Keywords) > 0 {
		builder.WriteString(fmt.Sprintf("  Keywords: %s\n", strings.Join(finding.Keywords, ", ")))
	}
	for k, v := range finding.Metadata {
		builder.WriteString(fmt.Sprintf("  %s: %v\n", k, v))
	}
	builder.WriteString("\n")
}

// appendSummary prints the per-severity finding counts
func (f *Formatter) appendSummary(builder *strings.Builder, findings []contract.Finding, options formatters.FormatterOptions) {
	counts := map[string]int{}
	for _, finding := range findings {
		counts[finding.Severity]++
	}

	summary := fmt.Sprintf("\n%d issue(s): %d high, %d medium, %d low\n",
		len(findings),
		counts[contract.SeverityHigh],
		counts[contract.SeverityMedium],
		counts[contract.SeverityLow])
	if !options.NoColor {
		summary = f.colors["white"].Sprint(summary)
	}
	builder.WriteString(summary)
}

// appendRisk prints the overall risk assessment block
func (f *Formatter) appendRisk(builder *strings.Builder, assessment *risk.Assessment, options formatters.FormatterOptions) {
	levelColor := f.colors["green"]
	switch assessment.Level {
	case risk.LevelHigh:
		levelColor = f.colors["red"]
	case risk.LevelMedium:
		levelColor = f.colors["yellow"]
	}

	line := fmt.Sprintf("\nRisk score: %d/100 (%s risk)\n", assessment.Score, assessment.Level)
	if !options.NoColor {
		line = fmt.Sprintf("\nRisk score: %d/100 (%s)\n",
			assessment.Score, levelColor.Sprintf("%s risk", assessment.Level))
	}
	builder.WriteString(line)

	for _, issue := range assessment.Issues {
		builder.WriteString(fmt.Sprintf("  - %s\n", issue))
	}
}

// appendSections prints the segmented section view of the document
func (f *Formatter) appendSections(builder *strings.Builder, doc contract.Document, options formatters.FormatterOptions) {
	header := fmt.Sprintf("Sections (%d):\n", len(doc.Sections))
	if !options.NoColor {
		header = f.colors["cyan"].Sprintf("Sections (%d):\n", len(doc.Sections))
	}
	builder.WriteString(header)

	for _, sec := range doc.Sections {
		builder.WriteString(fmt.Sprintf("  %s\n", sec.Heading))
		if options.Verbose && sec.Body != "" {
			for _, line := range strings.Split(sec.Body, "\n") {
				builder.WriteString(fmt.Sprintf("    %s\n", line))
			}
		}
	}
	builder.WriteString("\n")
}

func (f *Formatter) severityColor(severity string) *color.Color {
	switch severity {
	case contract.SeverityHigh:
		return f.colors["red"]
	case contract.SeverityMedium:
		return f.colors["yellow"]
	default:
		return f.colors["green"]
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
