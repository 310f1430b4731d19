package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/thermoculture/discourse-engine/internal/models"
)

// SaveSentiment stores one immutable sentiment result for a record.
func (s *Store) SaveSentiment(ctx context.Context, recordID uuid.UUID, result models.SentimentResult) error {
	query := `
        INSERT INTO sentiment_results (id, record_id, overall_sentiment, sentiment_label, confidence, analyzed_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
    `

	_, err := s.pool.Exec(ctx, query,
		uuid.New(), recordID, result.OverallSentiment, result.SentimentLabel, result.Confidence)
	if err != nil {
		return fmt.Errorf("inserting sentiment result: %w", err)
	}
	return nil
}

// SaveClassification stores the winning category and the full score
// distribution as jsonb.
func (s *Store) SaveClassification(ctx context.Context, recordID uuid.UUID, result models.ClassificationResult) error {
	query := `
        INSERT INTO classification_results (id, record_id, classification_type, confidence, all_scores, analyzed_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
    `

	_, err := s.pool.Exec(ctx, query,
		uuid.New(), recordID, result.ClassificationType, result.Confidence, result.AllScores)
	if err != nil {
		return fmt.Errorf("inserting classification result: %w", err)
	}
	return nil
}

// SaveThemes links a record to its themes. The insert is atomic per link:
// re-analysis of the same record never errors or double-links.
func (s *Store) SaveThemes(ctx context.Context, recordID uuid.UUID, assignments []models.ThemeAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(assignments)*3)
	placeholderParts := make([]string, 0, len(assignments))
	for i, a := range assignments {
		offset := i * 3
		placeholderParts = append(placeholderParts,
			fmt.Sprintf("($%d, $%d, $%d, NOW())", offset+1, offset+2, offset+3))
		values = append(values, recordID, a.Theme, a.RelevanceScore)
	}

	query := `INSERT INTO record_themes (record_id, theme, relevance_score, created_at) VALUES ` +
		strings.Join(placeholderParts, ", ") +
		` ON CONFLICT (record_id, theme) DO NOTHING`

	if _, err := s.pool.Exec(ctx, query, values...); err != nil {
		return fmt.Errorf("inserting theme links: %w", err)
	}
	return nil
}

// SaveLocations stores the gazetteer matches found in a record's text.
func (s *Store) SaveLocations(ctx context.Context, recordID uuid.UUID, matches []models.LocationMatch) error {
	if len(matches) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(matches)*5)
	placeholderParts := make([]string, 0, len(matches))
	for i, m := range matches {
		offset := i * 5
		placeholderParts = append(placeholderParts,
			fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)",
				offset+1, offset+2, offset+3, offset+4, offset+5))
		values = append(values, recordID, m.Name, m.Region, m.Latitude, m.Longitude)
	}

	query := `INSERT INTO record_locations (record_id, name, region, latitude, longitude) VALUES ` +
		strings.Join(placeholderParts, ", ") +
		` ON CONFLICT (record_id, name) DO NOTHING`

	if _, err := s.pool.Exec(ctx, query, values...); err != nil {
		return fmt.Errorf("inserting location matches: %w", err)
	}
	return nil
}
