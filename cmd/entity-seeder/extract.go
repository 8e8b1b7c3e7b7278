// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/entity-seeder/internal/fetch"
	"github.com/pdiddy/entity-seeder/internal/pdftext"
	"github.com/pdiddy/entity-seeder/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract plain text from the downloaded notice PDF",
	Long: `Extract reads the downloaded notice PDF, extracts its embedded text
layer page by page, and writes the result to the data directory's text/
subdirectory. Run fetch first.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("url", "", "notice PDF URL (determines the file slug)")
	extractCmd.Flags().String("data-dir", "", "base directory for pipeline artifacts")

	rootCmd.AddCommand(extractCmd)
}

// textPath returns where extracted text for the notice is written.
func textPath(cfg types.FetchConfig) string {
	return filepath.Join(cfg.DataDir, fetch.TextDir, fetch.Slug(cfg.NoticeURL)+".txt")
}

// extractNotice runs PDF text extraction for the configured notice and
// writes the text file. Returns the extracted text.
func extractNotice(cfg types.FetchConfig) (string, error) {
	pdfPath := fetch.PDFPath(cfg)
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("notice PDF not found at %s (run fetch first): %w", pdfPath, err)
	}

	text, err := pdftext.TextLayer{}.Extract(pdfPath)
	if err != nil {
		return "", err
	}

	outPath := textPath(cfg)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", fmt.Errorf("creating text directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	return text, nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := fetchConfig(cmd)

	text, err := extractNotice(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("extracted %d characters to %s\n", len(text), textPath(cfg))
	return nil
}
