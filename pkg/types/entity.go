// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// EntryTag identifies which segmentation pass produced a raw entry.
type EntryTag string

const (
	// TagBullet marks entries split out of the bullet-point update section.
	TagBullet EntryTag = "bullet"
	// TagList marks entries accumulated from the consolidated list section.
	TagList EntryTag = "list"
)

// RawEntry is an unparsed candidate text span believed to contain one
// entity's name plus surrounding description. It exists only between
// segmentation and parsing.
type RawEntry struct {
	Tag  EntryTag
	Text string
}

// Entity is a sanctioned organization named in the notice: a brand name
// plus the aliases listed in its "also known as" clause.
type Entity struct {
	// Brand is the primary organization name. Non-empty, at least five
	// characters, and contains at least one corporate-suffix keyword.
	Brand string `json:"brand" yaml:"brand"`

	// Aliases lists alternate names in source order. May be empty.
	Aliases []string `json:"aliases" yaml:"aliases"`
}

// FetchRecord holds provenance for a downloaded notice PDF.
type FetchRecord struct {
	// SourceURL is the URL the PDF was downloaded from.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// PDFPath is the local filesystem path to the downloaded PDF.
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`

	// Bytes is the size of the downloaded file.
	Bytes int64 `json:"bytes" yaml:"bytes"`

	// SHA256 is the hex digest of the downloaded file contents.
	SHA256 string `json:"sha256" yaml:"sha256"`

	// FetchedAt is when the download completed.
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}
