// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/entity-seeder/pkg/types"
)

func TestParseEntryAliases(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantBrand   string
		wantAliases []string
	}{
		{
			name:        "semicolon and conjunction separated aliases",
			raw:         "Acme Textile Co. (also known as Acme Textiles; and Acme Tex)",
			wantBrand:   "Acme Textile Co",
			wantAliases: []string{"Acme Textiles", "Acme Tex"},
		},
		{
			name:        "formerly known as clause",
			raw:         "Beta Mining Corp. (formerly known as Beta Minerals)",
			wantBrand:   "Beta Mining Corp",
			wantAliases: []string{"Beta Minerals"},
		},
		{
			name:        "including aliases clause",
			raw:         "Gamma Energy Group (including two aliases: Gamma Power; Gamma Electric)",
			wantBrand:   "Gamma Energy Group",
			wantAliases: []string{"Gamma Power", "Gamma Electric"},
		},
		{
			name:        "short alias fragments dropped",
			raw:         "Delta Holdings Ltd. (also known as DH; Delta Industrial Holdings)",
			wantBrand:   "Delta Holdings Ltd",
			wantAliases: []string{"Delta Industrial Holdings"},
		},
		{
			name:        "no alias clause",
			raw:         "Epsilon Semiconductor Co., Ltd.",
			wantBrand:   "Epsilon Semiconductor Co., Ltd",
			wantAliases: nil,
		},
		{
			name:        "whitespace collapsed across wrapped lines",
			raw:         "Zeta  Logistics\n Group",
			wantBrand:   "Zeta Logistics Group",
			wantAliases: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEntry(tt.raw)
			if !ok {
				t.Fatalf("ParseEntry(%q) rejected, want entity", tt.raw)
			}
			if got.Brand != tt.wantBrand {
				t.Errorf("brand = %q, want %q", got.Brand, tt.wantBrand)
			}
			if !reflect.DeepEqual(got.Aliases, tt.wantAliases) {
				t.Errorf("aliases = %v, want %v", got.Aliases, tt.wantAliases)
			}
		})
	}
}

func TestParseEntryRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"too short", "Acme"},
		{"whitespace only", "   \n  "},
		{"no corporate keyword", "A sentence about forced labor enforcement"},
		{"brand too short after alias strip", "Ab. (also known as Some Other Name)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := ParseEntry(tt.raw); ok {
				t.Errorf("ParseEntry(%q) = %+v, want rejection", tt.raw, got)
			}
		})
	}
}

func TestParseEntryKeywordCaseInsensitive(t *testing.T) {
	got, ok := ParseEntry("NINESTAR CORPORATION UNIT")
	if !ok {
		t.Fatal("expected keyword match to be case-insensitive")
	}
	if got.Brand != "NINESTAR CORPORATION UNIT" {
		t.Errorf("brand = %q", got.Brand)
	}
}

func TestParseEntryIdempotent(t *testing.T) {
	raw := "Acme Textile Co. (also known as Acme Textiles; and Acme Tex)"
	first, ok1 := ParseEntry(raw)
	second, ok2 := ParseEntry(raw)
	if ok1 != ok2 || !reflect.DeepEqual(first, second) {
		t.Errorf("ParseEntry not deterministic: %+v vs %+v", first, second)
	}
}

func TestDedupe(t *testing.T) {
	in := []types.Entity{
		{Brand: "Acme Mining Co"},
		{Brand: "ACME MINING CO", Aliases: []string{"dup"}},
		{Brand: "Beta Energy Group"},
		{Brand: "acme mining co"},
	}

	got := Dedupe(in)

	if len(got) != 2 {
		t.Fatalf("Dedupe() kept %d entities, want 2", len(got))
	}
	if got[0].Brand != "Acme Mining Co" || got[1].Brand != "Beta Energy Group" {
		t.Errorf("Dedupe() order = [%s, %s], want first-seen order", got[0].Brand, got[1].Brand)
	}

	seen := map[string]bool{}
	for _, e := range got {
		low := strings.ToLower(e.Brand)
		if seen[low] {
			t.Errorf("duplicate lowercase brand %q", low)
		}
		seen[low] = true
	}
}
