// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"contract-scan/internal/checks/risk"
	"contract-scan/internal/contract"
	"contract-scan/internal/formatters"
	"contract-scan/internal/formatters/shared"

	"gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML format output, 100% compatible with JSON structure"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

func (f *Formatter) Format(doc contract.Document, findings []contract.Finding, assessment *risk.Assessment, options formatters.FormatterOptions) (string, error) {
	// Filter findings by severity level using shared logic - IDENTICAL to JSON formatter
	filteredFindings := shared.FilterFindingsBySeverity(findings, options)
	report := shared.ConvertToReport(doc, filteredFindings, assessment, options)

	yamlData, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("error formatting YAML: %w", err)
	}

	return string(yamlData), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
