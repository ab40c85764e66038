// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package render produces versioned contract files. PDF sources are
// copied and stamped with a version footer using pdfcpu; text sources are
// written back as plain text. Rasterizing arbitrary updated text into a
// fresh PDF is out of scope here: downstream consumers treat the version
// file as an opaque document either way.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// VersionFilename builds the canonical versioned filename for a contract.
func VersionFilename(cid string, version int, ext string) string {
	return fmt.Sprintf("%s-v%d%s", cid, version, ext)
}

// VersionFooter renders the footer line stamped onto PDF versions.
func VersionFooter(cid string, version int, now time.Time) string {
	return fmt.Sprintf("%s • Version %d • %s", cid, version, now.Format("2006-01-02"))
}

// StampPDFVersion copies a PDF to outPath with a small footer watermark
// carrying the contract id, version and date, then validates the result.
func StampPDFVersion(inPath, outPath, footer string) error {
	desc := "fontname:Helvetica, points:8, position:bc, offset:0 12, rotation:0, scalefactor:1 abs, fillcolor:#666666"
	if err := api.AddTextWatermarksFile(inPath, outPath, nil, true, footer, desc, nil); err != nil {
		return fmt.Errorf("error stamping PDF version: %w", err)
	}
	if err := api.ValidateFile(outPath, nil); err != nil {
		return fmt.Errorf("stamped PDF failed validation: %w", err)
	}
	return nil
}

// WriteTextVersion writes updated contract text as a versioned .txt file.
func WriteTextVersion(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating version directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0600); err != nil {
		return fmt.Errorf("error writing text version: %w", err)
	}
	return nil
}
