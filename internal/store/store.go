// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store applies parsed entities to a local SQLite database.
// It exists for development seeding; the generated SQL file remains the
// canonical artifact for production databases.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/entity-seeder/internal/sqlgen"
	"github.com/pdiddy/entity-seeder/pkg/types"
)

// Store manages the companies SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database at cfg.DBPath and creates
// the companies schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	// Array-typed columns hold the same brace-literal text syntax the
	// SQL artifact uses; SQLite has no native array type.
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS companies (
		brand TEXT PRIMARY KEY,
		aliases TEXT,
		product_categories TEXT,
		countries_of_origin TEXT,
		risk_level TEXT,
		sources TEXT,
		reason TEXT,
		last_updated TEXT
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// ApplySummary holds counts from an apply run.
type ApplySummary struct {
	Inserted int
	Updated  int
}

// Total returns the number of entities processed.
func (s ApplySummary) Total() int {
	return s.Inserted + s.Updated
}

// Upsert writes entities into the companies table in one transaction,
// keyed by brand. Existing rows are updated in place so reapplying a
// regenerated list converges instead of duplicating.
func (s *Store) Upsert(ctx context.Context, entities []types.Entity, w io.Writer) (ApplySummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ApplySummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO companies (brand, aliases, product_categories, countries_of_origin, risk_level, sources, reason, last_updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(brand) DO UPDATE SET
			aliases=excluded.aliases, product_categories=excluded.product_categories,
			countries_of_origin=excluded.countries_of_origin, risk_level=excluded.risk_level,
			sources=excluded.sources, reason=excluded.reason, last_updated=excluded.last_updated`)
	if err != nil {
		return ApplySummary{}, fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	var summary ApplySummary
	for _, e := range entities {
		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM companies WHERE brand = ?`, e.Brand,
		).Scan(&exists); err != nil {
			return summary, fmt.Errorf("checking %s: %w", e.Brand, err)
		}

		_, err := stmt.ExecContext(ctx,
			e.Brand, arrayText(e.Aliases),
			sqlgen.Categories, sqlgen.Countries, sqlgen.RiskLevel,
			sqlgen.Sources, sqlgen.Reason, sqlgen.ListDate,
		)
		if err != nil {
			return summary, fmt.Errorf("upserting %s: %w", e.Brand, err)
		}
		if exists > 0 {
			summary.Updated++
		} else {
			summary.Inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing: %w", err)
	}

	fmt.Fprintf(w, "applied: %d inserted, %d updated\n", summary.Inserted, summary.Updated)
	return summary, nil
}

// arrayText renders values in the artifact's brace-literal syntax
// without SQL escaping; parameters are bound, not spliced.
func arrayText(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return "{" + strings.Join(quoted, ",") + "}"
}
