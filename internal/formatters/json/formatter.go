// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"contract-scan/internal/checks/risk"
	"contract-scan/internal/contract"
	"contract-scan/internal/formatters"
	"contract-scan/internal/formatters/shared"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

func (f *Formatter) Format(doc contract.Document, findings []contract.Finding, assessment *risk.Assessment, options formatters.FormatterOptions) (string, error) {
	// Filter findings by severity level using shared logic
	filteredFindings := shared.FilterFindingsBySeverity(findings, options)
	report := shared.ConvertToReport(doc, filteredFindings, assessment, options)

	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting JSON: %w", err)
	}

	return string(jsonData), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
