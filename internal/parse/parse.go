// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns the extracted text of a UFLPA Entity List notice
// into structured entity records. The heuristics here are hand-tuned to
// the layout of one Federal Register document: a bullet-point update
// section followed by a consolidated list of entities in prose form.
package parse

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// sectionMarker begins the entity-list appendix. The notice mentions it
// earlier in a table-of-contents style, so the locator takes the last
// occurrence.
const sectionMarker = "Appendix 1"

// Boilerplate removal patterns. verDatePattern spans line boundaries and
// must be applied before any line splitting.
var (
	registerHeaderPattern = regexp.MustCompile(`\d{4} Federal Register\s*/.*?Notices\s*`)
	verDatePattern        = regexp.MustCompile(`(?s)VerDate\s+\S+.*?NOTICES1\s*`)
	footerTagPattern      = regexp.MustCompile(`lotter on\s+\S+.*?\n`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// EntitySection trims full down to the entity-list appendix, from the
// last occurrence of the section marker to the end. If the marker is
// absent it prints a diagnostic to w and returns full unchanged; the
// downstream heuristics then run over the whole document.
func EntitySection(full string, w io.Writer) string {
	idx := strings.LastIndex(full, sectionMarker)
	if idx == -1 {
		fmt.Fprintf(w, "warning: could not find %q marker\n", sectionMarker)
		return full
	}
	fmt.Fprintf(w, "  found %q at character %d\n", sectionMarker, idx)
	return full[idx:]
}

// CleanText removes Federal Register page headers, VerDate footer
// blocks, and single-line footer tags.
func CleanText(text string) string {
	text = registerHeaderPattern.ReplaceAllString(text, " ")
	text = verDatePattern.ReplaceAllString(text, " ")
	text = footerTagPattern.ReplaceAllString(text, " ")
	return text
}

// collapseSpace reduces whitespace runs to single spaces and trims.
func collapseSpace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}
