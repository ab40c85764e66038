// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extract reads contract text out of uploaded files. The analysis
// core consumes plain strings; this is the collaborator that produces
// them from .txt and .pdf sources.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadContractText extracts the full text of a contract file based on its
// extension. Supported: .txt (read as UTF-8) and .pdf.
func ReadContractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return "", fmt.Errorf("error reading contract text: %w", err)
		}
		return string(data), nil
	case ".pdf":
		content, err := ExtractPDFText(path)
		if err != nil {
			return "", err
		}
		return content.Text, nil
	default:
		return "", fmt.Errorf("unsupported contract format: %s", filepath.Ext(path))
	}
}
