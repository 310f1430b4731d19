// Package pipeline turns batches of harvested items into persisted
// discourse records: normalize, fingerprint, dedup, resolve a location,
// write in batches.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thermoculture/discourse-engine/internal/geo"
	"github.com/thermoculture/discourse-engine/internal/models"
	"github.com/thermoculture/discourse-engine/internal/textnorm"
)

// ErrDuplicate marks an insert that hit the per-source fingerprint
// uniqueness constraint. Stores return it (wrapped) so the pipeline can
// recover with a row-by-row retry instead of failing the batch.
var ErrDuplicate = errors.New("duplicate record")

// insertBatchSize is how many new records go to the store per write.
const insertBatchSize = 100

// RecordStore is the persistence surface the pipeline needs. Fingerprints
// are scoped per source; the same content under two sources is two records.
type RecordStore interface {
	ExistingFingerprints(ctx context.Context, sourceID uuid.UUID) (map[string]struct{}, error)
	LocationIDs(ctx context.Context) (map[string]uuid.UUID, error)
	InsertRecords(ctx context.Context, records []*models.DiscourseRecord) error
	InsertRecord(ctx context.Context, record *models.DiscourseRecord) error
}

// Stats reports one ingestion call's outcome.
type Stats struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	Duplicates int `json:"duplicates"`
}

// Pipeline ingests collected items for one source at a time. The dedup
// caches are loaded per call, never shared across invocations, so the
// guarantee is "no duplicate inserted from a single ingestion call".
type Pipeline struct {
	store RecordStore
}

func NewPipeline(store RecordStore) *Pipeline {
	return &Pipeline{store: store}
}

// IngestItems normalizes, deduplicates, and persists items for sourceID.
// It returns the batch stats together with the records actually inserted,
// in input order, so callers can hand them straight to analysis.
func (p *Pipeline) IngestItems(ctx context.Context, sourceID uuid.UUID, items []models.CollectedItem) (Stats, []*models.DiscourseRecord, error) {
	stats := Stats{Total: len(items)}
	if len(items) == 0 {
		return stats, nil, nil
	}

	seen, err := p.store.ExistingFingerprints(ctx, sourceID)
	if err != nil {
		return stats, nil, fmt.Errorf("loading fingerprints for source %s: %w", sourceID, err)
	}
	if seen == nil {
		seen = make(map[string]struct{})
	}

	locationIDs, err := p.store.LocationIDs(ctx)
	if err != nil {
		return stats, nil, fmt.Errorf("loading location cache: %w", err)
	}

	var fresh []*models.DiscourseRecord
	for _, item := range items {
		content := textnorm.Normalize(item.Content)
		fp := textnorm.Fingerprint(content)
		if _, dup := seen[fp]; dup {
			stats.Duplicates++
			continue
		}
		seen[fp] = struct{}{}

		record := &models.DiscourseRecord{
			ID:          uuid.New(),
			SourceID:    sourceID,
			Title:       strings.TrimSpace(item.Title),
			Content:     content,
			SourceURL:   item.SourceURL,
			Author:      item.Author,
			PublishedAt: item.PublishedAt,
			CollectedAt: time.Now().UTC(),
			LocationID:  resolveLocation(item.LocationHints, content, locationIDs),
			Metadata:    recordMetadata(item.RawMetadata, fp),
		}
		fresh = append(fresh, record)
	}

	var inserted []*models.DiscourseRecord
	for start := 0; start < len(fresh); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(fresh) {
			end = len(fresh)
		}
		ok, err := p.insertBatch(ctx, fresh[start:end])
		if err != nil {
			stats.New = len(inserted)
			stats.Duplicates = stats.Total - stats.New
			return stats, inserted, err
		}
		inserted = append(inserted, ok...)
	}

	stats.New = len(inserted)
	stats.Duplicates = stats.Total - stats.New
	slog.Info("[IngestionPipeline] Batch ingested",
		slog.String("source_id", sourceID.String()),
		slog.Int("total", stats.Total),
		slog.Int("new", stats.New),
		slog.Int("duplicates", stats.Duplicates))
	return stats, inserted, nil
}

// insertBatch writes one batch, falling back to row-by-row inserts on a
// conflict so a single bad row cannot block its neighbours. Rows that still
// conflict are duplicates that slipped past the fingerprint check; they are
// logged and skipped, never propagated.
func (p *Pipeline) insertBatch(ctx context.Context, batch []*models.DiscourseRecord) ([]*models.DiscourseRecord, error) {
	err := p.store.InsertRecords(ctx, batch)
	if err == nil {
		return batch, nil
	}
	if !errors.Is(err, ErrDuplicate) {
		return nil, fmt.Errorf("inserting record batch: %w", err)
	}

	slog.Warn("[IngestionPipeline] Batch insert conflicted, retrying row by row",
		slog.Int("batch_size", len(batch)))

	inserted := make([]*models.DiscourseRecord, 0, len(batch))
	for _, record := range batch {
		switch err := p.store.InsertRecord(ctx, record); {
		case err == nil:
			inserted = append(inserted, record)
		case errors.Is(err, ErrDuplicate):
			slog.Warn("[IngestionPipeline] Skipping conflicting record",
				slog.String("record_id", record.ID.String()),
				slog.String("source_url", record.SourceURL))
		default:
			return inserted, fmt.Errorf("inserting record %s: %w", record.ID, err)
		}
	}
	return inserted, nil
}

// resolveLocation tries the harvester's hints against the known-location
// cache first, then falls back to matching the content itself. Unknown
// hints are ignored; no location is a valid outcome.
func resolveLocation(hints []string, content string, locationIDs map[string]uuid.UUID) *uuid.UUID {
	for _, hint := range hints {
		if id, ok := locationIDs[strings.ToLower(strings.TrimSpace(hint))]; ok {
			return &id
		}
	}
	for _, match := range geo.FindLocations(content) {
		if id, ok := locationIDs[strings.ToLower(match.Name)]; ok {
			return &id
		}
	}
	return nil
}

func recordMetadata(raw map[string]any, fingerprint string) map[string]any {
	metadata := make(map[string]any, len(raw)+1)
	for k, v := range raw {
		metadata[k] = v
	}
	metadata[models.MetadataFingerprintKey] = fingerprint
	return metadata
}
