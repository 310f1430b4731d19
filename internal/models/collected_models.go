package models

import (
	"time"

	"github.com/google/uuid"
)

// CollectedItem is a single piece of harvested content as produced by a
// collector. It is transient: the ingest pipeline consumes it exactly once
// and either persists a DiscourseRecord or drops it as a duplicate.
type CollectedItem struct {
	Title         string         `json:"title"`
	Content       string         `json:"content"`
	SourceURL     string         `json:"source_url"`
	Author        string         `json:"author,omitempty"`
	PublishedAt   *time.Time     `json:"published_at,omitempty"`
	LocationHints []string       `json:"location_hints,omitempty"`
	RawMetadata   map[string]any `json:"raw_metadata,omitempty"`
}

// HarvestEnvelope is the wire format collectors publish to the raw-content
// topic. Format tells the consumer whether Content needs markdown stripping.
type HarvestEnvelope struct {
	SourceID   uuid.UUID     `json:"source_id"`
	SourceName string        `json:"source_name"`
	Format     string        `json:"format,omitempty"`
	Item       CollectedItem `json:"item"`
}

// DiscourseRecord is a persisted, normalized discourse sample. Content is
// stored post-normalization and never re-normalized; Metadata carries the
// content fingerprint used for dedup lookups.
type DiscourseRecord struct {
	ID          uuid.UUID      `json:"id"`
	SourceID    uuid.UUID      `json:"source_id"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	SourceURL   string         `json:"source_url"`
	Author      string         `json:"author,omitempty"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
	CollectedAt time.Time      `json:"collected_at"`
	LocationID  *uuid.UUID     `json:"location_id,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// MetadataFingerprintKey is the metadata key under which the content
// fingerprint is stored on a DiscourseRecord.
const MetadataFingerprintKey = "content_hash"
