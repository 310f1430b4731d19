package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thermoculture/discourse-engine/internal/analysis"
	"github.com/thermoculture/discourse-engine/internal/models"
	"github.com/thermoculture/discourse-engine/internal/pipeline"
)

// Store implements the pipeline and analysis persistence interfaces on a
// pgx pool.
type Store struct {
	pool *pgxpool.Pool
}

var (
	_ pipeline.RecordStore = (*Store)(nil)
	_ analysis.Store       = (*Store)(nil)
)

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// ExistingFingerprints loads every content fingerprint already persisted
// for one source. Fingerprints are scoped per source on purpose: the same
// text under two sources is two records.
func (s *Store) ExistingFingerprints(ctx context.Context, sourceID uuid.UUID) (map[string]struct{}, error) {
	query := `
        SELECT metadata->>'content_hash'
        FROM discourse_records
        WHERE source_id = $1 AND metadata->>'content_hash' IS NOT NULL
    `

	rows, err := s.pool.Query(ctx, query, sourceID)
	if err != nil {
		return nil, fmt.Errorf("querying fingerprints: %w", err)
	}
	defer rows.Close()

	fingerprints := make(map[string]struct{})
	for rows.Next() {
		var fp string
		if err := rows.Scan(&fp); err != nil {
			return nil, fmt.Errorf("scanning fingerprint: %w", err)
		}
		fingerprints[fp] = struct{}{}
	}
	return fingerprints, rows.Err()
}

// LocationIDs loads the known-location cache, keyed by lowercased name.
func (s *Store) LocationIDs(ctx context.Context) (map[string]uuid.UUID, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, LOWER(name) FROM locations`)
	if err != nil {
		return nil, fmt.Errorf("querying locations: %w", err)
	}
	defer rows.Close()

	locations := make(map[string]uuid.UUID)
	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scanning location: %w", err)
		}
		locations[name] = id
	}
	return locations, rows.Err()
}

const recordColumns = `id, source_id, title, content, source_url, author,
        published_at, collected_at, location_id, metadata`

// InsertRecords writes a batch in a single multi-row statement. A unique
// violation anywhere in the batch surfaces as pipeline.ErrDuplicate so the
// caller can retry row by row.
func (s *Store) InsertRecords(ctx context.Context, records []*models.DiscourseRecord) error {
	if len(records) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(records)*10)
	placeholderParts := make([]string, 0, len(records))
	for i, r := range records {
		offset := i * 10
		placeholderParts = append(placeholderParts,
			fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
				offset+1, offset+2, offset+3, offset+4, offset+5,
				offset+6, offset+7, offset+8, offset+9, offset+10))
		values = append(values, r.ID, r.SourceID, r.Title, r.Content, r.SourceURL,
			r.Author, r.PublishedAt, r.CollectedAt, r.LocationID, r.Metadata)
	}

	query := `INSERT INTO discourse_records (` + recordColumns + `) VALUES ` +
		strings.Join(placeholderParts, ", ")

	if _, err := s.pool.Exec(ctx, query, values...); err != nil {
		return wrapConflict(err, "inserting record batch")
	}
	return nil
}

func (s *Store) InsertRecord(ctx context.Context, record *models.DiscourseRecord) error {
	query := `INSERT INTO discourse_records (` + recordColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := s.pool.Exec(ctx, query,
		record.ID, record.SourceID, record.Title, record.Content, record.SourceURL,
		record.Author, record.PublishedAt, record.CollectedAt, record.LocationID, record.Metadata)
	if err != nil {
		return wrapConflict(err, "inserting record")
	}
	return nil
}

// ListUnanalyzed returns records with no stored sentiment result yet,
// oldest first.
func (s *Store) ListUnanalyzed(ctx context.Context, limit int) ([]*models.DiscourseRecord, error) {
	query := `
        SELECT r.id, r.source_id, r.title, r.content, r.source_url, r.author,
               r.published_at, r.collected_at, r.location_id, r.metadata
        FROM discourse_records r
        LEFT JOIN sentiment_results sr ON sr.record_id = r.id
        WHERE sr.record_id IS NULL
        ORDER BY r.collected_at
        LIMIT $1
    `

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying unanalyzed records: %w", err)
	}
	defer rows.Close()

	var records []*models.DiscourseRecord
	for rows.Next() {
		var r models.DiscourseRecord
		if err := rows.Scan(&r.ID, &r.SourceID, &r.Title, &r.Content, &r.SourceURL,
			&r.Author, &r.PublishedAt, &r.CollectedAt, &r.LocationID, &r.Metadata); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		records = append(records, &r)
	}
	return records, rows.Err()
}

// wrapConflict maps Postgres unique violations onto pipeline.ErrDuplicate.
func wrapConflict(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%s: %w", op, pipeline.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
