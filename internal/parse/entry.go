// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"

	"github.com/pdiddy/entity-seeder/pkg/types"
)

var (
	// aliasClausePattern captures the contents of a parenthesized
	// "also known as" / "formerly known as" clause.
	aliasClausePattern = regexp.MustCompile(`(?i)\((?:also known as|formerly known as|including \w+ aliases?):?\s*([^)]+)\)`)

	// aliasSeparatorPattern splits an alias clause into individual
	// names: semicolons (optionally followed by "and"), ", and", or a
	// bare "and".
	aliasSeparatorPattern = regexp.MustCompile(`;\s*(?:and\s+)?|,\s*and\s+|\s+and\s+`)

	// brandKeywordPattern is the segmentation suffix set plus two brand
	// names the notice lists without any corporate suffix.
	brandKeywordPattern = regexp.MustCompile(`(?i)` + suffixKeywords + `|Ninestar|Camel`)
)

// minBrandLen rejects fragments too short to be an organization name.
const minBrandLen = 5

// ParseEntry normalizes a raw entry into an Entity. The second return
// value is false when the text is not an entity: too short, or the
// brand carries no corporate-suffix keyword. Rejection is the common
// case and is silent.
func ParseEntry(raw string) (types.Entity, bool) {
	raw = collapseSpace(raw)
	if len(raw) < minBrandLen {
		return types.Entity{}, false
	}

	var brand string
	var aliases []string

	if m := aliasClausePattern.FindStringSubmatchIndex(raw); m != nil {
		clause := raw[m[2]:m[3]]
		for _, part := range aliasSeparatorPattern.Split(clause, -1) {
			part = strings.TrimSpace(part)
			if len(part) <= 3 {
				continue
			}
			if alias := strings.TrimSpace(strings.Trim(part, ";,")); alias != "" {
				aliases = append(aliases, alias)
			}
		}
		brand = strings.TrimSpace(raw[:m[0]])
		brand = strings.TrimSpace(strings.TrimRight(brand, ".,;("))
	} else {
		brand = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(raw), ".,;"))
	}

	brand = collapseSpace(brand)
	if len(brand) < minBrandLen {
		return types.Entity{}, false
	}
	if !brandKeywordPattern.MatchString(brand) {
		return types.Entity{}, false
	}

	return types.Entity{Brand: brand, Aliases: aliases}, true
}

// Dedupe removes entities whose lowercased brand was already seen,
// preserving first-seen order.
func Dedupe(entities []types.Entity) []types.Entity {
	seen := make(map[string]struct{}, len(entities))
	var out []types.Entity
	for _, e := range entities {
		key := strings.ToLower(e.Brand)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}
