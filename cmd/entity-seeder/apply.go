// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/entity-seeder/internal/store"
	"github.com/pdiddy/entity-seeder/pkg/types"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Load the parsed entities into a local SQLite database",
	Long: `Apply runs the pipeline and upserts the parsed entities into a SQLite
companies table, creating the schema if needed. This is a development
convenience; the SQL file written by seed is the canonical artifact.`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().String("url", "", "notice PDF URL")
	applyCmd.Flags().String("data-dir", "", "base directory for pipeline artifacts")
	applyCmd.Flags().String("db", "", "SQLite database path")
	applyCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")

	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	entities, err := collectEntities(cmd)
	if err != nil {
		return err
	}
	if len(entities) == 0 {
		fmt.Println("no entities found")
		return nil
	}

	s, err := store.Open(types.StoreConfig{DBPath: flagOrConfig(cmd, "db", "db_path")})
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = s.Upsert(cmd.Context(), entities, os.Stdout)
	return err
}
