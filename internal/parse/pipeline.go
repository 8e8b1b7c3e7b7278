// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"fmt"
	"io"

	"github.com/pdiddy/entity-seeder/pkg/types"
)

// Run executes the full parsing pipeline over extracted notice text:
// locate the entity section, segment it into raw entries, parse each,
// and deduplicate by lowercased brand. Progress counts go to w.
func Run(fullText string, w io.Writer) []types.Entity {
	section := EntitySection(fullText, w)
	fmt.Fprintf(w, "entity list section: %d characters\n", len(section))

	raw := Segment(section)
	var bullets, lists int
	for _, r := range raw {
		if r.Tag == types.TagBullet {
			bullets++
		} else {
			lists++
		}
	}
	fmt.Fprintf(w, "found %d raw entries (%d bullet, %d list)\n", len(raw), bullets, lists)

	var entities []types.Entity
	for _, r := range raw {
		if e, ok := ParseEntry(r.Text); ok {
			entities = append(entities, e)
		}
	}
	entities = Dedupe(entities)
	fmt.Fprintf(w, "parsed %d unique entities\n", len(entities))

	return entities
}
