// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads the Federal Register notice PDF and records
// its provenance.
package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/entity-seeder/internal/httputil"
	"github.com/pdiddy/entity-seeder/pkg/types"
)

const (
	// RawDir holds downloaded PDFs under the data directory.
	RawDir = "raw"
	// MetadataDir holds YAML fetch records under the data directory.
	MetadataDir = "metadata"
	// TextDir holds extracted plain text under the data directory.
	TextDir = "text"
)

// Slug returns a filesystem-safe filename stem for the notice URL,
// normally the Federal Register document number (e.g. "2025-00901").
func Slug(noticeURL string) string {
	u, err := url.Parse(noticeURL)
	if err != nil {
		return "notice"
	}
	base := strings.TrimSuffix(filepath.Base(u.Path), filepath.Ext(u.Path))
	if base == "" || base == "." || base == "/" {
		return "notice"
	}
	return base
}

// PDFPath returns the local path the notice PDF is downloaded to.
func PDFPath(cfg types.FetchConfig) string {
	return filepath.Join(cfg.DataDir, RawDir, Slug(cfg.NoticeURL)+".pdf")
}

// FetchNotice downloads the notice PDF, writing it to dataDir/raw/ and
// a YAML fetch record to dataDir/metadata/. If the PDF already exists
// on disk the download is skipped; the skipped return value reports
// this. Progress lines go to w.
func FetchNotice(ctx context.Context, client *http.Client, cfg types.FetchConfig, w io.Writer) (record *types.FetchRecord, skipped bool, err error) {
	slug := Slug(cfg.NoticeURL)
	pdfPath := PDFPath(cfg)
	metaPath := filepath.Join(cfg.DataDir, MetadataDir, slug+".yaml")

	if info, err := os.Stat(pdfPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists, %d bytes)\n", slug, info.Size())
		rec, readErr := readRecord(metaPath)
		if readErr != nil {
			rec = &types.FetchRecord{SourceURL: cfg.NoticeURL, PDFPath: pdfPath, Bytes: info.Size()}
		}
		return rec, true, nil
	}

	for _, dir := range []string{
		filepath.Join(cfg.DataDir, RawDir),
		filepath.Join(cfg.DataDir, MetadataDir),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, false, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	fmt.Fprintf(w, "downloading: %s\n", cfg.NoticeURL)

	n, sum, err := downloadFile(ctx, client, cfg, pdfPath)
	if err != nil {
		return nil, false, fmt.Errorf("downloading %s: %w", slug, err)
	}
	fmt.Fprintf(w, "downloaded %d bytes\n", n)

	rec := &types.FetchRecord{
		SourceURL: cfg.NoticeURL,
		PDFPath:   pdfPath,
		Bytes:     n,
		SHA256:    sum,
		FetchedAt: time.Now().UTC(),
	}
	if err := writeRecord(rec, metaPath); err != nil {
		return nil, false, fmt.Errorf("writing fetch record for %s: %w", slug, err)
	}
	return rec, false, nil
}

// downloadFile fetches the notice to destPath via a temporary file,
// renaming on success. It sets the configured User-Agent (govinfo.gov
// rejects obvious script agents) and hashes the body while copying.
func downloadFile(ctx context.Context, client *http.Client, cfg types.FetchConfig, destPath string) (int64, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.NoticeURL, nil)
	if err != nil {
		return 0, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return 0, "", fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, cfg.NoticeURL)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return 0, "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	hash := sha256.New()
	n, copyErr := io.Copy(tmpFile, io.TeeReader(resp.Body, hash))
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return 0, "", fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return 0, "", fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return 0, "", fmt.Errorf("renaming temp file: %w", err)
	}
	return n, hex.EncodeToString(hash.Sum(nil)), nil
}

// writeRecord writes a FetchRecord to a YAML file.
func writeRecord(rec *types.FetchRecord, path string) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling fetch record: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// readRecord reads a FetchRecord from a YAML file.
func readRecord(path string) (*types.FetchRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec types.FetchRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
