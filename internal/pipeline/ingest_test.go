package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermoculture/discourse-engine/internal/models"
	"github.com/thermoculture/discourse-engine/internal/textnorm"
)

// fakeStore keeps records in memory and enforces the per-source
// fingerprint uniqueness the real store gets from its unique index.
type fakeStore struct {
	records   []*models.DiscourseRecord
	locations map[string]uuid.UUID

	failBatch       bool // first InsertRecords call returns a conflict
	rowConflicts    map[string]bool
	batchErr        error
	fingerprintsErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{locations: make(map[string]uuid.UUID)}
}

func (s *fakeStore) ExistingFingerprints(_ context.Context, sourceID uuid.UUID) (map[string]struct{}, error) {
	if s.fingerprintsErr != nil {
		return nil, s.fingerprintsErr
	}
	out := make(map[string]struct{})
	for _, r := range s.records {
		if r.SourceID != sourceID {
			continue
		}
		if fp, ok := r.Metadata[models.MetadataFingerprintKey].(string); ok {
			out[fp] = struct{}{}
		}
	}
	return out, nil
}

func (s *fakeStore) LocationIDs(context.Context) (map[string]uuid.UUID, error) {
	return s.locations, nil
}

func (s *fakeStore) InsertRecords(_ context.Context, records []*models.DiscourseRecord) error {
	if s.failBatch {
		s.failBatch = false
		return fmt.Errorf("batch insert: %w", ErrDuplicate)
	}
	if s.batchErr != nil {
		return s.batchErr
	}
	for _, r := range records {
		if err := s.insert(r); err != nil {
			return err
		}
	}
	return nil
}

func (s *fakeStore) InsertRecord(_ context.Context, record *models.DiscourseRecord) error {
	return s.insert(record)
}

func (s *fakeStore) insert(record *models.DiscourseRecord) error {
	fp, _ := record.Metadata[models.MetadataFingerprintKey].(string)
	if s.rowConflicts[fp] {
		return fmt.Errorf("unique violation: %w", ErrDuplicate)
	}
	for _, existing := range s.records {
		if existing.SourceID == record.SourceID &&
			existing.Metadata[models.MetadataFingerprintKey] == fp {
			return fmt.Errorf("unique violation: %w", ErrDuplicate)
		}
	}
	s.records = append(s.records, record)
	return nil
}

func item(title, content string) models.CollectedItem {
	return models.CollectedItem{Title: title, Content: content, SourceURL: "https://example.org/" + title}
}

func TestIngestItemsIntraBatchDedup(t *testing.T) {
	store := newFakeStore()
	p := NewPipeline(store)
	sourceID := uuid.New()

	stats, fresh, err := p.IngestItems(context.Background(), sourceID, []models.CollectedItem{
		item("a", "Flood hits Leeds"),
		item("a2", "Flood   hits\nLeeds"),
	})
	require.NoError(t, err)

	assert.Equal(t, Stats{Total: 2, New: 1, Duplicates: 1}, stats)
	require.Len(t, fresh, 1)
	assert.Equal(t, "Flood hits Leeds", fresh[0].Content)
	assert.Equal(t, textnorm.Fingerprint("Flood hits Leeds"),
		fresh[0].Metadata[models.MetadataFingerprintKey])
	require.Len(t, store.records, 1)
}

func TestIngestItemsCrossBatchDedup(t *testing.T) {
	store := newFakeStore()
	p := NewPipeline(store)
	sourceID := uuid.New()
	ctx := context.Background()

	stats, _, err := p.IngestItems(ctx, sourceID, []models.CollectedItem{item("a", "Flood hits Leeds")})
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 1, New: 1}, stats)

	stats, fresh, err := p.IngestItems(ctx, sourceID, []models.CollectedItem{item("a", "Flood hits Leeds")})
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 1, New: 0, Duplicates: 1}, stats)
	assert.Empty(t, fresh)
	require.Len(t, store.records, 1)
}

func TestIngestItemsFingerprintScopedPerSource(t *testing.T) {
	store := newFakeStore()
	p := NewPipeline(store)
	ctx := context.Background()

	_, _, err := p.IngestItems(ctx, uuid.New(), []models.CollectedItem{item("a", "Flood hits Leeds")})
	require.NoError(t, err)

	stats, _, err := p.IngestItems(ctx, uuid.New(), []models.CollectedItem{item("a", "Flood hits Leeds")})
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 1, New: 1}, stats)
	assert.Len(t, store.records, 2)
}

func TestIngestItemsLocationFromHint(t *testing.T) {
	store := newFakeStore()
	leedsID := uuid.New()
	store.locations["leeds"] = leedsID
	p := NewPipeline(store)

	it := item("a", "Completely placeless text")
	it.LocationHints = []string{"Unknown Village", " Leeds "}

	_, fresh, err := p.IngestItems(context.Background(), uuid.New(), []models.CollectedItem{it})
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	require.NotNil(t, fresh[0].LocationID)
	assert.Equal(t, leedsID, *fresh[0].LocationID)
}

func TestIngestItemsLocationFromContentFallback(t *testing.T) {
	store := newFakeStore()
	manchesterID := uuid.New()
	store.locations["manchester"] = manchesterID
	p := NewPipeline(store)

	_, fresh, err := p.IngestItems(context.Background(), uuid.New(), []models.CollectedItem{
		item("a", "Flooding in Manchester closed two schools"),
	})
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	require.NotNil(t, fresh[0].LocationID)
	assert.Equal(t, manchesterID, *fresh[0].LocationID)
}

func TestIngestItemsNoLocation(t *testing.T) {
	store := newFakeStore()
	p := NewPipeline(store)

	_, fresh, err := p.IngestItems(context.Background(), uuid.New(), []models.CollectedItem{
		item("a", "Nothing geographic here at all"),
	})
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Nil(t, fresh[0].LocationID)
}

func TestIngestItemsConflictFallsBackRowByRow(t *testing.T) {
	store := newFakeStore()
	store.failBatch = true
	store.rowConflicts = map[string]bool{
		textnorm.Fingerprint("second item text"): true,
	}
	p := NewPipeline(store)

	stats, fresh, err := p.IngestItems(context.Background(), uuid.New(), []models.CollectedItem{
		item("a", "first item text"),
		item("b", "second item text"),
		item("c", "third item text"),
	})
	require.NoError(t, err)

	// The conflicting row is skipped; its neighbours still land.
	assert.Equal(t, Stats{Total: 3, New: 2, Duplicates: 1}, stats)
	require.Len(t, fresh, 2)
	assert.Equal(t, "first item text", fresh[0].Content)
	assert.Equal(t, "third item text", fresh[1].Content)
	assert.Len(t, store.records, 2)
}

func TestIngestItemsPropagatesStoreErrors(t *testing.T) {
	store := newFakeStore()
	store.fingerprintsErr = errors.New("connection refused")
	p := NewPipeline(store)

	_, _, err := p.IngestItems(context.Background(), uuid.New(), []models.CollectedItem{item("a", "text")})
	require.Error(t, err)

	store = newFakeStore()
	store.batchErr = errors.New("connection reset")
	p = NewPipeline(store)

	_, _, err = p.IngestItems(context.Background(), uuid.New(), []models.CollectedItem{item("a", "text")})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicate)
}

func TestIngestItemsEmptyBatch(t *testing.T) {
	p := NewPipeline(newFakeStore())

	stats, fresh, err := p.IngestItems(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
	assert.Empty(t, fresh)
}
