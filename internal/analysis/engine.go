// Package analysis orchestrates the analyzers over persisted discourse
// records and answers aggregate queries on their stored results.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/thermoculture/discourse-engine/internal/classifier"
	"github.com/thermoculture/discourse-engine/internal/geo"
	"github.com/thermoculture/discourse-engine/internal/models"
	"github.com/thermoculture/discourse-engine/internal/sentiment"
	"github.com/thermoculture/discourse-engine/internal/themes"
)

const keywordCount = 10

// ResultStore persists one result per analyzer per record.
type ResultStore interface {
	SaveSentiment(ctx context.Context, recordID uuid.UUID, result models.SentimentResult) error
	SaveClassification(ctx context.Context, recordID uuid.UUID, result models.ClassificationResult) error
	SaveThemes(ctx context.Context, recordID uuid.UUID, assignments []models.ThemeAssignment) error
	SaveLocations(ctx context.Context, recordID uuid.UUID, matches []models.LocationMatch) error
}

// AggregateStore groups already-persisted results. ThemeCounts with a nil
// since covers all time.
type AggregateStore interface {
	SentimentDistribution(ctx context.Context) (SentimentSummary, error)
	ThemeCounts(ctx context.Context, since *time.Time) (map[string]int, error)
	RegionCounts(ctx context.Context) (map[models.Region]int, error)
	DiscourseDistribution(ctx context.Context) (DiscourseSummary, error)
}

type Store interface {
	ResultStore
	AggregateStore
}

// Engine runs every analyzer synchronously; all analyzer state is built at
// construction and read-only afterwards, so one Engine is safe to share.
type Engine struct {
	sentiment  *sentiment.Analyzer
	classifier *classifier.Classifier
	themes     *themes.Extractor
	store      Store
}

func NewEngine(store Store) *Engine {
	return &Engine{
		sentiment:  sentiment.NewAnalyzer(),
		classifier: classifier.NewClassifier(),
		themes:     themes.NewExtractor(),
		store:      store,
	}
}

// AnalyzeRecord runs all four analyzers plus keyword extraction against one
// record and persists each analyzer's output.
func (e *Engine) AnalyzeRecord(ctx context.Context, record *models.DiscourseRecord) (models.AnalysisResult, error) {
	return e.analyzeWithThemes(ctx, record, e.themes.ExtractThemes(record.Content))
}

// AnalyzeBatch analyzes each record, fitting the latent topic model over
// the whole batch so theme scores benefit from corpus context. A failure on
// one record is logged and recorded as an error placeholder; its siblings
// are unaffected.
func (e *Engine) AnalyzeBatch(ctx context.Context, records []*models.DiscourseRecord) []models.AnalysisResult {
	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = record.Content
	}
	themesByRecord := e.themes.ExtractThemesBatch(texts, 0)

	results := make([]models.AnalysisResult, 0, len(records))
	for i, record := range records {
		result, err := e.analyzeWithThemes(ctx, record, themesByRecord[i])
		if err != nil {
			slog.Error("[AnalysisEngine] Record analysis failed",
				slog.String("record_id", record.ID.String()),
				slog.Any("error", err))
			results = append(results, models.AnalysisResult{
				RecordID: record.ID,
				Error:    err.Error(),
			})
			continue
		}
		results = append(results, result)
	}
	return results
}

func (e *Engine) analyzeWithThemes(ctx context.Context, record *models.DiscourseRecord, themeAssignments []models.ThemeAssignment) (models.AnalysisResult, error) {
	result := models.AnalysisResult{
		RecordID:   record.ID,
		AnalyzedAt: time.Now().UTC(),
	}

	result.Sentiment = e.sentiment.Analyze(record.Content)
	if err := e.store.SaveSentiment(ctx, record.ID, result.Sentiment); err != nil {
		return result, fmt.Errorf("saving sentiment: %w", err)
	}

	result.Classification = e.classifier.Classify(record.Content)
	if err := e.store.SaveClassification(ctx, record.ID, result.Classification); err != nil {
		return result, fmt.Errorf("saving classification: %w", err)
	}

	result.Themes = themeAssignments
	if len(themeAssignments) > 0 {
		if err := e.store.SaveThemes(ctx, record.ID, themeAssignments); err != nil {
			return result, fmt.Errorf("saving themes: %w", err)
		}
	}

	result.Locations = geo.FindLocations(record.Content)
	if len(result.Locations) > 0 {
		if err := e.store.SaveLocations(ctx, record.ID, result.Locations); err != nil {
			return result, fmt.Errorf("saving locations: %w", err)
		}
	}

	result.Keywords = e.themes.Keywords(record.Content, keywordCount)
	return result, nil
}
