// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/entity-seeder/internal/parse"
	"github.com/pdiddy/entity-seeder/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse entities out of the extracted notice text",
	Long: `Parse runs the segmentation and entry-parsing heuristics over the
extracted notice text and prints the resulting entity list. Run extract
first. Nothing is written; use seed to produce the SQL artifact.`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("url", "", "notice PDF URL (determines the file slug)")
	parseCmd.Flags().String("data-dir", "", "base directory for pipeline artifacts")

	rootCmd.AddCommand(parseCmd)
}

// printSample prints up to n entities in the "brand (aka: ...)" form.
func printSample(entities []types.Entity, n int) {
	if n > len(entities) {
		n = len(entities)
	}
	for _, e := range entities[:n] {
		aka := ""
		if len(e.Aliases) > 0 {
			aka = fmt.Sprintf(" (aka: %s)", strings.Join(e.Aliases, ", "))
		}
		fmt.Printf("  - %s%s\n", e.Brand, aka)
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := fetchConfig(cmd)

	data, err := os.ReadFile(textPath(cfg))
	if err != nil {
		return fmt.Errorf("reading extracted text (run extract first): %w", err)
	}

	entities := parse.Run(string(data), os.Stdout)
	fmt.Println()
	printSample(entities, len(entities))
	return nil
}
