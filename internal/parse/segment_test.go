// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"reflect"
	"testing"

	"github.com/pdiddy/entity-seeder/pkg/types"
)

const listHeader = "UFLPA Section 2(d)(2)(B)(i) A List of Entities"

func rawTexts(entries []types.RawEntry, tag types.EntryTag) []string {
	var out []string
	for _, e := range entries {
		if e.Tag == tag {
			out = append(out, e.Text)
		}
	}
	return out
}

func TestSegmentBullets(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "truncates at section boundary",
			text: "Preamble text. • Foo Mining Corp. some description. UFLPA Section 2(d) more",
			want: []string{"Foo Mining Corp. some description."},
		},
		{
			name: "multiple bullets with wrapped whitespace",
			text: "intro • Alpha Textile\n  Co., Ltd. description • Beta Energy Group notes Appendix 2",
			want: []string{"Alpha Textile Co., Ltd. description", "Beta Energy Group notes"},
		},
		{
			name: "no bullets yields nothing",
			text: "A document with no bullet characters at all.",
			want: nil,
		},
		{
			name: "empty fragment after truncation dropped",
			text: "intro • This update also adds entities",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rawTexts(Segment(tt.text), types.TagBullet)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("bullet entries = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentListContinuation(t *testing.T) {
	text := listHeader + "\n" +
		"Beta Holdings Group\n" +
		"(a subsidiary of Gamma)\n"

	got := rawTexts(Segment(text), types.TagList)
	want := []string{"Beta Holdings Group (a subsidiary of Gamma)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("list entries = %v, want %v", got, want)
	}
}

func TestSegmentListPredicates(t *testing.T) {
	tests := []struct {
		name  string
		lines string
		want  []string
	}{
		{
			name: "header line flushes and is discarded",
			lines: "Alpha Mining Co.\n" +
				"The FLETF identified these entities\n" +
				"Beta Energy Group\n",
			want: []string{"Alpha Mining Co.", "Beta Energy Group"},
		},
		{
			name: "prose starting with The is not an entry",
			lines: "The Corporation responsible for enforcement\n" +
				"Alpha Mining Co.\n",
			want: []string{"Alpha Mining Co."},
		},
		{
			name: "lowercase and conjunction continuations merge",
			lines: "Alpha Textile Co.\n" +
				"and its subsidiaries\n" +
				"in the region\n",
			want: []string{"Alpha Textile Co. and its subsidiaries in the region"},
		},
		{
			name: "uppercase-to-semicolon continuation merges",
			lines: "Alpha Industry Group (also known as\n" +
				"Alpha Industrial;\n" +
				"Beta Energy Group\n",
			want: []string{"Alpha Industry Group (also known as Alpha Industrial;", "Beta Energy Group"},
		},
		{
			name: "unrecognized line flushes entry and is dropped",
			lines: "Alpha Mining Co.\n" +
				"12 CFR citation text\n" +
				"Beta Energy Group\n",
			want: []string{"Alpha Mining Co.", "Beta Energy Group"},
		},
		{
			name: "line without keyword while idle is skipped",
			lines: "Some stray prose line\n" +
				"Alpha Mining Co.\n",
			want: []string{"Alpha Mining Co."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rawTexts(Segment(listHeader+"\n"+tt.lines), types.TagList)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("list entries = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentListAbsentHeader(t *testing.T) {
	text := "Alpha Mining Co.\nBeta Energy Group\n"
	if got := rawTexts(Segment(text), types.TagList); got != nil {
		t.Errorf("expected no list entries without the section header, got %v", got)
	}
}
