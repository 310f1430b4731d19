package analysis

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/thermoculture/discourse-engine/internal/models"
)

const (
	trendingWindow = 30 * 24 * time.Hour
	trendingLimit  = 20
)

// SentimentSummary is the stored-sentiment distribution plus the mean
// compound score across all results.
type SentimentSummary struct {
	Counts       map[models.SentimentLabel]int `json:"counts"`
	AverageScore float64                       `json:"average_score"`
}

// DiscourseSummary is the per-category result counts plus each category's
// mean winning confidence.
type DiscourseSummary struct {
	Counts        map[models.DiscourseCategory]int     `json:"counts"`
	AvgConfidence map[models.DiscourseCategory]float64 `json:"avg_confidence"`
}

// AggregatedInsights bundles every aggregate view. Sections that fail to
// load are left at their zero value; an empty corpus is not an error.
type AggregatedInsights struct {
	Sentiment SentimentSummary      `json:"sentiment"`
	Themes    map[string]int        `json:"themes"`
	Regions   map[models.Region]int `json:"regions"`
	Discourse DiscourseSummary      `json:"discourse"`
}

// TrendingTheme reports how a theme's share of recent mentions compares to
// its all-time share. A positive delta means the theme is gaining ground.
type TrendingTheme struct {
	Theme        string  `json:"theme"`
	RecentCount  int     `json:"recent_count"`
	RecentShare  float64 `json:"recent_share"`
	AllTimeShare float64 `json:"all_time_share"`
	Delta        float64 `json:"delta"`
}

// AggregatedInsights loads every aggregate section, degrading per section
// so a single failing query never blanks the whole view.
func (e *Engine) AggregatedInsights(ctx context.Context) AggregatedInsights {
	var insights AggregatedInsights

	var err error
	if insights.Sentiment, err = e.store.SentimentDistribution(ctx); err != nil {
		slog.Warn("[AnalysisEngine] Sentiment aggregation failed", slog.Any("error", err))
	}
	if insights.Themes, err = e.store.ThemeCounts(ctx, nil); err != nil {
		slog.Warn("[AnalysisEngine] Theme aggregation failed", slog.Any("error", err))
	}
	if insights.Regions, err = e.store.RegionCounts(ctx); err != nil {
		slog.Warn("[AnalysisEngine] Region aggregation failed", slog.Any("error", err))
	}
	if insights.Discourse, err = e.store.DiscourseDistribution(ctx); err != nil {
		slog.Warn("[AnalysisEngine] Discourse aggregation failed", slog.Any("error", err))
	}
	return insights
}

// TrendingThemes ranks themes by how much their share of mentions in the
// last 30 days exceeds their all-time share, highest first, top 20.
func (e *Engine) TrendingThemes(ctx context.Context) ([]TrendingTheme, error) {
	allTime, err := e.store.ThemeCounts(ctx, nil)
	if err != nil {
		return nil, err
	}

	since := time.Now().UTC().Add(-trendingWindow)
	recent, err := e.store.ThemeCounts(ctx, &since)
	if err != nil {
		return nil, err
	}

	allTotal := 0
	for _, n := range allTime {
		allTotal += n
	}
	recentTotal := 0
	for _, n := range recent {
		recentTotal += n
	}

	names := make(map[string]bool, len(allTime))
	for theme := range allTime {
		names[theme] = true
	}
	for theme := range recent {
		names[theme] = true
	}

	trending := make([]TrendingTheme, 0, len(names))
	for theme := range names {
		entry := TrendingTheme{Theme: theme, RecentCount: recent[theme]}
		if recentTotal > 0 {
			entry.RecentShare = float64(recent[theme]) / float64(recentTotal)
		}
		if allTotal > 0 {
			entry.AllTimeShare = float64(allTime[theme]) / float64(allTotal)
		}
		entry.Delta = entry.RecentShare - entry.AllTimeShare
		trending = append(trending, entry)
	}

	sort.Slice(trending, func(a, b int) bool {
		if trending[a].Delta != trending[b].Delta {
			return trending[a].Delta > trending[b].Delta
		}
		return trending[a].Theme < trending[b].Theme
	})
	if len(trending) > trendingLimit {
		trending = trending[:trendingLimit]
	}
	return trending, nil
}
