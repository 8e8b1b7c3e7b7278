// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sqlgen renders parsed entities as a single multi-row INSERT
// for the companies table. The output is a static text artifact, not a
// statement sent to a live connection, so escaping is limited to
// doubling embedded single quotes.
package sqlgen

import (
	"fmt"
	"strings"

	"github.com/pdiddy/entity-seeder/pkg/types"
)

// Fixed column values for every row. The notice covers one list
// revision, so the date literal is the revision date, not the run date.
const (
	ListDate  = "2025-01-15"
	listLabel = "January 15, 2025"

	RiskLevel  = "high"
	Categories = `{"general"}`
	Countries  = `{"CN"}`
	Sources    = `{"UFLPA"}`

	Reason = "Listed on UFLPA Entity List. Subject to rebuttable presumption of forced labor under 19 U.S.C. § 1307."
)

// Escape doubles embedded single quotes for SQL string literals.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// ArrayLiteral renders values as a Postgres-style array literal:
// {"a","b"}, or {} when empty.
func ArrayLiteral(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + Escape(v) + `"`
	}
	return "{" + strings.Join(quoted, ",") + "}"
}

// Render serializes the entity list into one INSERT statement over the
// eight-column companies schema.
func Render(entities []types.Entity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- UFLPA Entity List (%s)\n", listLabel)
	b.WriteString("-- Generated by entity-seeder\n")
	fmt.Fprintf(&b, "-- %d entities\n\n", len(entities))
	b.WriteString("INSERT INTO companies (brand, aliases, product_categories, countries_of_origin, risk_level, sources, reason, last_updated)\n")
	b.WriteString("VALUES\n")

	rows := make([]string, len(entities))
	for i, e := range entities {
		rows[i] = fmt.Sprintf("  ('%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s')",
			Escape(e.Brand), ArrayLiteral(e.Aliases),
			Categories, Countries, RiskLevel, Sources,
			Escape(Reason), ListDate)
	}
	b.WriteString(strings.Join(rows, ",\n"))
	b.WriteString(";")
	return b.String()
}
