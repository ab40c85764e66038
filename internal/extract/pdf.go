// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPages caps per-document processing time on very large PDFs. Pages
// beyond the cap are not extracted.
const maxPages = 50

// PDFContent represents the extracted text content from a PDF document.
type PDFContent struct {
	Filename  string
	Text      string
	PageCount int
	WordCount int
	LineCount int
}

// ExtractPDFText extracts text from a PDF document using ledongthuc/pdf.
// Pages are extracted in parallel and reassembled in order; pages that
// fail to extract are skipped rather than failing the whole document.
func ExtractPDFText(filePath string) (*PDFContent, error) {
	content := &PDFContent{
		Filename: filepath.Base(filePath),
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return content, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	content.PageCount = r.NumPage()
	if content.PageCount > maxPages {
		content.PageCount = maxPages
	}

	type pageResult struct {
		pageNum int
		text    string
		err     error
	}
	resultChan := make(chan pageResult, content.PageCount)

	for i := 1; i <= content.PageCount; i++ {
		go func(pageNum int) {
			p := r.Page(pageNum)
			if p.V.IsNull() {
				resultChan <- pageResult{pageNum: pageNum, err: fmt.Errorf("null page")}
				return
			}
			text, err := p.GetPlainText(nil)
			resultChan <- pageResult{pageNum: pageNum, text: text, err: err}
		}(i)
	}

	pageTexts := make(map[int]string)
	for i := 0; i < content.PageCount; i++ {
		result := <-resultChan
		if result.err != nil {
			continue
		}
		pageTexts[result.pageNum] = result.text
	}

	// Assemble pages in order. Contract text is fed straight to the
	// section segmenter, so no page-break markers are inserted: an
	// artificial ALL-CAPS marker line would segment as a heading.
	var buf bytes.Buffer
	for i := 1; i <= content.PageCount; i++ {
		if text, exists := pageTexts[i]; exists {
			if buf.Len() > 0 {
				buf.WriteString("\n")
			}
			buf.WriteString(text)
		}
	}

	content.Text = buf.String()
	content.WordCount = len(strings.Fields(content.Text))
	content.LineCount = strings.Count(content.Text, "\n") + 1
	return content, nil
}
