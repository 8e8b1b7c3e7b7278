// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/entity-seeder/internal/fetch"
	"github.com/pdiddy/entity-seeder/internal/parse"
	"github.com/pdiddy/entity-seeder/internal/sqlgen"
	"github.com/pdiddy/entity-seeder/pkg/types"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run the whole pipeline and write the seed SQL file",
	Long: `Seed runs fetch, extract, and parse in sequence, renders the parsed
entities as one multi-row INSERT for the companies table, and writes it
to the output path. A previously downloaded PDF is reused. If no
entities parse, nothing is written.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().String("url", "", "notice PDF URL")
	seedCmd.Flags().String("data-dir", "", "base directory for pipeline artifacts")
	seedCmd.Flags().String("output", "", "path for the generated SQL file")
	seedCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")

	rootCmd.AddCommand(seedCmd)
}

// collectEntities runs fetch, extract, and parse for the configured
// notice, reusing the cached PDF when present.
func collectEntities(cmd *cobra.Command) ([]types.Entity, error) {
	cfg := fetchConfig(cmd)
	client := &http.Client{Timeout: cfg.Timeout}

	if _, _, err := fetch.FetchNotice(cmd.Context(), client, cfg, os.Stdout); err != nil {
		return nil, err
	}

	text, err := extractNotice(cfg)
	if err != nil {
		return nil, err
	}
	fmt.Printf("extracted %d characters\n", len(text))

	return parse.Run(text, os.Stdout), nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	entities, err := collectEntities(cmd)
	if err != nil {
		return err
	}

	if len(entities) == 0 {
		fmt.Println("no entities found")
		return nil
	}

	outPath := flagOrConfig(cmd, "output", "output_path")
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	sql := sqlgen.Render(entities)
	if err := os.WriteFile(outPath, []byte(sql), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Printf("\nSQL written to %s\n", outPath)
	fmt.Println("\nsample entries:")
	printSample(entities, 8)
	return nil
}
