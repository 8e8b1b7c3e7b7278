// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"bytes"
	"strings"
	"testing"
)

func TestEntitySectionTakesLastOccurrence(t *testing.T) {
	full := "Table of contents mentions Appendix 1 early.\n" +
		"Body text.\n" +
		"Appendix 1\nThe actual list starts here."

	var buf bytes.Buffer
	got := EntitySection(full, &buf)

	want := "Appendix 1\nThe actual list starts here."
	if got != want {
		t.Errorf("EntitySection() = %q, want %q", got, want)
	}
	if !strings.Contains(buf.String(), "found") {
		t.Errorf("expected a locator diagnostic, got %q", buf.String())
	}
}

func TestEntitySectionMissingMarkerReturnsInput(t *testing.T) {
	full := "No marker anywhere in this document."

	var buf bytes.Buffer
	got := EntitySection(full, &buf)

	if got != full {
		t.Errorf("EntitySection() = %q, want input unchanged", got)
	}
	if !strings.Contains(buf.String(), "warning") {
		t.Errorf("expected a warning diagnostic, got %q", buf.String())
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		gone  []string
		keep  []string
	}{
		{
			name:  "federal register header",
			input: "Acme Co. 2025 Federal Register / Vol. 90, No. 10 / Notices continued text",
			gone:  []string{"Federal Register"},
			keep:  []string{"Acme Co.", "continued text"},
		},
		{
			name:  "verdate block spans newlines",
			input: "Acme Co.\nVerDate Sep<11>2014 17:30 Jan 14, 2025\nJkt 265001\nNOTICES1 more text",
			gone:  []string{"VerDate", "Jkt 265001"},
			keep:  []string{"Acme Co.", "more text"},
		},
		{
			name:  "footer tag line",
			input: "Acme Co.\nlotter on DSK11XQN23PROD with NOTICES1\nmore text",
			gone:  []string{"lotter on"},
			keep:  []string{"Acme Co.", "more text"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanText(tt.input)
			for _, s := range tt.gone {
				if strings.Contains(got, s) {
					t.Errorf("CleanText() = %q, still contains %q", got, s)
				}
			}
			for _, s := range tt.keep {
				if !strings.Contains(got, s) {
					t.Errorf("CleanText() = %q, lost %q", got, s)
				}
			}
		})
	}
}
