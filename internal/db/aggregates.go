package db

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/thermoculture/discourse-engine/internal/analysis"
	"github.com/thermoculture/discourse-engine/internal/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// SentimentDistribution groups stored sentiment results by label and
// averages the compound score across all of them.
func (s *Store) SentimentDistribution(ctx context.Context) (analysis.SentimentSummary, error) {
	summary := analysis.SentimentSummary{Counts: make(map[models.SentimentLabel]int)}

	query, args, err := psql.
		Select("sentiment_label", "COUNT(*)").
		From("sentiment_results").
		GroupBy("sentiment_label").
		ToSql()
	if err != nil {
		return summary, fmt.Errorf("building sentiment distribution query: %w", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return summary, fmt.Errorf("querying sentiment distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			label string
			count int
		)
		if err := rows.Scan(&label, &count); err != nil {
			return summary, fmt.Errorf("scanning sentiment distribution: %w", err)
		}
		summary.Counts[models.SentimentLabel(label)] = count
	}
	if err := rows.Err(); err != nil {
		return summary, err
	}

	query, args, err = psql.
		Select("COALESCE(AVG(overall_sentiment), 0)").
		From("sentiment_results").
		ToSql()
	if err != nil {
		return summary, fmt.Errorf("building sentiment average query: %w", err)
	}
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&summary.AverageScore); err != nil {
		return summary, fmt.Errorf("querying sentiment average: %w", err)
	}
	return summary, nil
}

// ThemeCounts counts theme links, optionally restricted to links created
// at or after since. A nil since covers all time.
func (s *Store) ThemeCounts(ctx context.Context, since *time.Time) (map[string]int, error) {
	builder := psql.
		Select("theme", "COUNT(*)").
		From("record_themes").
		GroupBy("theme")
	if since != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *since})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building theme counts query: %w", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying theme counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			theme string
			count int
		)
		if err := rows.Scan(&theme, &count); err != nil {
			return nil, fmt.Errorf("scanning theme counts: %w", err)
		}
		counts[theme] = count
	}
	return counts, rows.Err()
}

// RegionCounts counts location matches per UK region.
func (s *Store) RegionCounts(ctx context.Context) (map[models.Region]int, error) {
	query, args, err := psql.
		Select("region", "COUNT(*)").
		From("record_locations").
		GroupBy("region").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building region counts query: %w", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying region counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Region]int)
	for rows.Next() {
		var (
			region string
			count  int
		)
		if err := rows.Scan(&region, &count); err != nil {
			return nil, fmt.Errorf("scanning region counts: %w", err)
		}
		counts[models.Region(region)] = count
	}
	return counts, rows.Err()
}

// DiscourseDistribution groups classification results by winning category
// with each category's mean confidence.
func (s *Store) DiscourseDistribution(ctx context.Context) (analysis.DiscourseSummary, error) {
	summary := analysis.DiscourseSummary{
		Counts:        make(map[models.DiscourseCategory]int),
		AvgConfidence: make(map[models.DiscourseCategory]float64),
	}

	query, args, err := psql.
		Select("classification_type", "COUNT(*)", "COALESCE(AVG(confidence), 0)").
		From("classification_results").
		GroupBy("classification_type").
		ToSql()
	if err != nil {
		return summary, fmt.Errorf("building discourse distribution query: %w", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return summary, fmt.Errorf("querying discourse distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			category      string
			count         int
			avgConfidence float64
		)
		if err := rows.Scan(&category, &count, &avgConfidence); err != nil {
			return summary, fmt.Errorf("scanning discourse distribution: %w", err)
		}
		summary.Counts[models.DiscourseCategory(category)] = count
		summary.AvgConfidence[models.DiscourseCategory(category)] = avgConfidence
	}
	return summary, rows.Err()
}
