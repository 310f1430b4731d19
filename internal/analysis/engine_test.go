package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermoculture/discourse-engine/internal/models"
)

type fakeResultStore struct {
	sentiments      map[uuid.UUID]models.SentimentResult
	classifications map[uuid.UUID]models.ClassificationResult
	themes          map[uuid.UUID][]models.ThemeAssignment
	locations       map[uuid.UUID][]models.LocationMatch

	failSentimentFor uuid.UUID

	allTimeThemes map[string]int
	recentThemes  map[string]int
	aggregateErr  error
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{
		sentiments:      make(map[uuid.UUID]models.SentimentResult),
		classifications: make(map[uuid.UUID]models.ClassificationResult),
		themes:          make(map[uuid.UUID][]models.ThemeAssignment),
		locations:       make(map[uuid.UUID][]models.LocationMatch),
	}
}

func (s *fakeResultStore) SaveSentiment(_ context.Context, id uuid.UUID, r models.SentimentResult) error {
	if id == s.failSentimentFor {
		return errors.New("connection reset")
	}
	s.sentiments[id] = r
	return nil
}

func (s *fakeResultStore) SaveClassification(_ context.Context, id uuid.UUID, r models.ClassificationResult) error {
	s.classifications[id] = r
	return nil
}

func (s *fakeResultStore) SaveThemes(_ context.Context, id uuid.UUID, a []models.ThemeAssignment) error {
	s.themes[id] = a
	return nil
}

func (s *fakeResultStore) SaveLocations(_ context.Context, id uuid.UUID, m []models.LocationMatch) error {
	s.locations[id] = m
	return nil
}

func (s *fakeResultStore) SentimentDistribution(context.Context) (SentimentSummary, error) {
	if s.aggregateErr != nil {
		return SentimentSummary{}, s.aggregateErr
	}
	return SentimentSummary{
		Counts:       map[models.SentimentLabel]int{models.SentimentNegative: 3},
		AverageScore: -0.21,
	}, nil
}

func (s *fakeResultStore) ThemeCounts(_ context.Context, since *time.Time) (map[string]int, error) {
	if s.aggregateErr != nil {
		return nil, s.aggregateErr
	}
	if since != nil {
		return s.recentThemes, nil
	}
	return s.allTimeThemes, nil
}

func (s *fakeResultStore) RegionCounts(context.Context) (map[models.Region]int, error) {
	if s.aggregateErr != nil {
		return nil, s.aggregateErr
	}
	return map[models.Region]int{models.RegionYorkshire: 2}, nil
}

func (s *fakeResultStore) DiscourseDistribution(context.Context) (DiscourseSummary, error) {
	if s.aggregateErr != nil {
		return DiscourseSummary{}, s.aggregateErr
	}
	return DiscourseSummary{
		Counts: map[models.DiscourseCategory]int{models.CategoryPracticalAdaptation: 4},
	}, nil
}

func record(content string) *models.DiscourseRecord {
	return &models.DiscourseRecord{
		ID:       uuid.New(),
		SourceID: uuid.New(),
		Content:  content,
	}
}

func TestAnalyzeRecordPersistsEveryAnalyzer(t *testing.T) {
	store := newFakeResultStore()
	engine := NewEngine(store)

	rec := record("The devastating flooding destroyed homes across Leeds. Residents installed flood defences and insulation.")

	result, err := engine.AnalyzeRecord(context.Background(), rec)
	require.NoError(t, err)

	assert.Equal(t, rec.ID, result.RecordID)
	assert.Empty(t, result.Error)
	assert.False(t, result.AnalyzedAt.IsZero())

	assert.Contains(t, store.sentiments, rec.ID)
	assert.True(t, result.Sentiment.SentimentLabel.Valid())

	assert.Contains(t, store.classifications, rec.ID)
	assert.True(t, result.Classification.ClassificationType.Valid())

	require.NotEmpty(t, result.Locations)
	assert.Equal(t, "Leeds", result.Locations[0].Name)
	assert.Contains(t, store.locations, rec.ID)

	assert.NotEmpty(t, result.Keywords)
}

func TestAnalyzeRecordPlacelessText(t *testing.T) {
	store := newFakeResultStore()
	engine := NewEngine(store)

	rec := record("Energy bills keep rising and nobody is fixing the insulation grants.")

	result, err := engine.AnalyzeRecord(context.Background(), rec)
	require.NoError(t, err)
	assert.Empty(t, result.Locations)
	assert.NotContains(t, store.locations, rec.ID)
}

func TestAnalyzeBatchIsolatesFailures(t *testing.T) {
	store := newFakeResultStore()
	engine := NewEngine(store)

	good := record("Flooding in Manchester closed two schools")
	bad := record("The council approved new solar panel grants")
	store.failSentimentFor = bad.ID

	results := engine.AnalyzeBatch(context.Background(), []*models.DiscourseRecord{good, bad})
	require.Len(t, results, 2)

	assert.Empty(t, results[0].Error)
	assert.Contains(t, store.sentiments, good.ID)

	assert.Equal(t, bad.ID, results[1].RecordID)
	assert.NotEmpty(t, results[1].Error)
	assert.NotContains(t, store.sentiments, bad.ID)
}

func TestAnalyzeBatchEmpty(t *testing.T) {
	engine := NewEngine(newFakeResultStore())
	assert.Empty(t, engine.AnalyzeBatch(context.Background(), nil))
}

func TestAggregatedInsights(t *testing.T) {
	store := newFakeResultStore()
	store.allTimeThemes = map[string]int{"Water": 7}
	engine := NewEngine(store)

	insights := engine.AggregatedInsights(context.Background())
	assert.Equal(t, 3, insights.Sentiment.Counts[models.SentimentNegative])
	assert.Equal(t, 7, insights.Themes["Water"])
	assert.Equal(t, 2, insights.Regions[models.RegionYorkshire])
	assert.Equal(t, 4, insights.Discourse.Counts[models.CategoryPracticalAdaptation])
}

func TestAggregatedInsightsDegradesOnStoreFailure(t *testing.T) {
	store := newFakeResultStore()
	store.aggregateErr = errors.New("no connection")
	engine := NewEngine(store)

	insights := engine.AggregatedInsights(context.Background())
	assert.Empty(t, insights.Sentiment.Counts)
	assert.Empty(t, insights.Themes)
	assert.Empty(t, insights.Regions)
	assert.Empty(t, insights.Discourse.Counts)
}

func TestTrendingThemesOrdering(t *testing.T) {
	store := newFakeResultStore()
	// Theme A: no history, all five mentions recent. Theme B: long-running
	// steady theme with the same recent count.
	store.allTimeThemes = map[string]int{"A": 5, "B": 105}
	store.recentThemes = map[string]int{"A": 5, "B": 5}
	engine := NewEngine(store)

	trending, err := engine.TrendingThemes(context.Background())
	require.NoError(t, err)
	require.Len(t, trending, 2)

	assert.Equal(t, "A", trending[0].Theme)
	assert.Equal(t, "B", trending[1].Theme)
	assert.Greater(t, trending[0].Delta, trending[1].Delta)
	assert.Equal(t, 5, trending[0].RecentCount)
	assert.InDelta(t, 0.5, trending[0].RecentShare, 1e-9)
	assert.InDelta(t, 5.0/110.0, trending[0].AllTimeShare, 1e-9)
}

func TestTrendingThemesLimit(t *testing.T) {
	store := newFakeResultStore()
	store.allTimeThemes = make(map[string]int)
	store.recentThemes = make(map[string]int)
	for i := 0; i < 30; i++ {
		name := string(rune('a' + i))
		store.allTimeThemes[name] = i + 1
		store.recentThemes[name] = 1
	}
	engine := NewEngine(store)

	trending, err := engine.TrendingThemes(context.Background())
	require.NoError(t, err)
	assert.Len(t, trending, 20)

	for i := 1; i < len(trending); i++ {
		assert.GreaterOrEqual(t, trending[i-1].Delta, trending[i].Delta)
	}
}

func TestTrendingThemesEmptyCorpus(t *testing.T) {
	store := newFakeResultStore()
	engine := NewEngine(store)

	trending, err := engine.TrendingThemes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, trending)
}

func TestTrendingThemesPropagatesError(t *testing.T) {
	store := newFakeResultStore()
	store.aggregateErr = errors.New("no connection")
	engine := NewEngine(store)

	_, err := engine.TrendingThemes(context.Background())
	require.Error(t, err)
}
