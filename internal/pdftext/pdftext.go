// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts the embedded text layer from PDF files.
// Only the text layer is read; scanned (image-only) PDFs would need OCR
// and are reported as extraction failures.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor converts a PDF file into plain text. The pipeline depends
// on this interface so tests can substitute canned text.
type Extractor interface {
	// Extract reads the PDF at pdfPath and returns its concatenated
	// per-page text.
	Extract(pdfPath string) (string, error)
}

// TextLayer extracts the embedded text layer with a pure-Go parser.
type TextLayer struct{}

// Extract reads every page's plain text, joined by newlines. Fonts are
// cached across pages since the notice reuses the same font set
// throughout.
func (TextLayer) Extract(pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening pdf %s: %w", pdfPath, err)
	}
	defer f.Close()

	fonts := make(map[string]*pdf.Font)
	var pages []string

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}

		text, err := p.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("reading pdf page %d: %w", i, err)
		}
		pages = append(pages, text)
	}

	full := strings.Join(pages, "\n")
	if strings.TrimSpace(full) == "" {
		return "", fmt.Errorf("no text layer in %s (scanned document?)", pdfPath)
	}
	return full, nil
}
