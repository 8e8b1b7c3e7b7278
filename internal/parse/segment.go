// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/entity-seeder/pkg/types"
)

const bullet = "•"

// suffixKeywords is the corporate/industry suffix set used to decide
// that a line names an organization. Case-sensitive at segmentation
// time; the parser reapplies it case-insensitively.
const suffixKeywords = `Co\.|Ltd\.|Inc\.|Corp\.|Group|Center|Park|Holdings|` +
	`Technology|Industry|Trading|Corporation|Mine|Mining|` +
	`Textile|Silicon|Energy|Semiconductor|Foods|Logistics|XPCC`

var (
	// sectionBoundaryPattern truncates a bullet entry before trailing
	// commentary bleeds in.
	sectionBoundaryPattern = regexp.MustCompile(`This update also|UFLPA Section|Appendix`)

	// listHeaderPattern marks the start of the consolidated list section.
	listHeaderPattern = regexp.MustCompile(`UFLPA Section 2\(d\)\(2\)\(B\)\(i\)\s+A List of Entities`)

	// skipLinePattern matches section and footer header lines inside the
	// consolidated list; these flush any in-progress entry and are
	// themselves discarded.
	skipLinePattern = regexp.MustCompile(`(?i)^(?:UFLPA Section|Entities identified|The FLETF|above may|` +
		`continue to|information about|that meet|Section \d)`)

	// entryKeywordPattern signals that a line starts a new entity entry.
	entryKeywordPattern = regexp.MustCompile(suffixKeywords)

	// continuationPattern matches an uppercase word leading to a
	// semicolon, the tail of a wrapped alias clause.
	continuationPattern = regexp.MustCompile(`^[A-Z][a-z]+.*;`)
)

// Segment splits the entity-section text into raw candidate entries
// using two independent passes: bullet-delimited entries, then the
// consolidated list. Results are concatenated in that order.
func Segment(text string) []types.RawEntry {
	var entries []types.RawEntry
	entries = append(entries, segmentBullets(text)...)
	entries = append(entries, segmentList(text)...)
	return entries
}

// segmentBullets splits on the bullet character. The fragment before
// the first bullet is preamble and dropped; each remaining fragment is
// whitespace-collapsed and truncated at the first section boundary.
func segmentBullets(text string) []types.RawEntry {
	parts := strings.Split(text, bullet)
	if len(parts) < 2 {
		return nil
	}

	var entries []types.RawEntry
	for _, part := range parts[1:] {
		part = collapseSpace(part)
		part = strings.TrimSpace(sectionBoundaryPattern.Split(part, 2)[0])
		if part != "" {
			entries = append(entries, types.RawEntry{Tag: types.TagBullet, Text: part})
		}
	}
	return entries
}

// segmentList extracts entries from the consolidated list section. It
// accumulates wrapped lines into single entries with a two-state
// machine: either no entry is in progress, or one is being accumulated.
// Predicate order matters and is first-match-wins.
func segmentList(text string) []types.RawEntry {
	loc := listHeaderPattern.FindStringIndex(text)
	if loc == nil {
		return nil
	}

	listText := CleanText(text[loc[0]:])

	var lines []string
	for _, line := range strings.Split(listText, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	var entries []types.RawEntry
	current := ""
	flush := func() {
		if current != "" {
			entries = append(entries, types.RawEntry{Tag: types.TagList, Text: current})
			current = ""
		}
	}

	for _, line := range lines {
		// Section headers flush and are discarded.
		if skipLinePattern.MatchString(line) {
			flush()
			continue
		}

		// New entry: leading uppercase plus a corporate suffix keyword,
		// excluding prose sentences that happen to mention one.
		first := []rune(line)[0]
		if unicode.IsUpper(first) && entryKeywordPattern.MatchString(line) &&
			!strings.HasPrefix(line, "The ") && !strings.HasPrefix(line, "These ") {
			flush()
			current = line
			continue
		}

		if current == "" {
			continue
		}

		// Continuation of a wrapped entry.
		if strings.HasPrefix(line, "(") || unicode.IsLower(first) ||
			strings.HasPrefix(line, "Ltd.") || strings.HasPrefix(line, "Co.,") ||
			strings.HasPrefix(line, "and ") || continuationPattern.MatchString(line) {
			current += " " + line
			continue
		}

		// Unrecognized line while accumulating: flush the entry and drop
		// the line. Its content is lost; kept this way so output matches
		// the established artifact.
		flush()
	}

	flush()
	return entries
}
