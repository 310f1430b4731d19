package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thermoculture/discourse-engine/config"
	"github.com/thermoculture/discourse-engine/internal/analysis"
	"github.com/thermoculture/discourse-engine/internal/db"
	"github.com/thermoculture/discourse-engine/internal/logging"
)

const analysisBatchLimit = 200

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	for {
		err := db.InitDB()
		if err == nil {
			break
		}
		slog.Warn("Postgres init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer db.CloseDB()

	store := db.NewStore(db.Pool)
	engine := analysis.NewEngine(store)

	interval := 10 * time.Minute
	if raw := os.Getenv("ANALYZER_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			slog.Warn("[Analyzer] Invalid ANALYZER_INTERVAL, using default",
				slog.String("value", raw))
		} else {
			interval = parsed
		}
	}

	slog.Info("[Analyzer] Starting analysis loop",
		slog.Duration("interval", interval))

	runOnce(ctx, store, engine)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[Analyzer] Shutting down...")
			return
		case <-ticker.C:
			runOnce(ctx, store, engine)
		}
	}
}

func runOnce(ctx context.Context, store *db.Store, engine *analysis.Engine) {
	records, err := store.ListUnanalyzed(ctx, analysisBatchLimit)
	if err != nil {
		slog.Error("[Analyzer] Failed to load unanalyzed records",
			slog.String("error", err.Error()))
		return
	}

	if len(records) > 0 {
		results := engine.AnalyzeBatch(ctx, records)
		failed := 0
		for _, r := range results {
			if r.Error != "" {
				failed++
			}
		}
		slog.Info("[Analyzer] Batch analysis complete",
			slog.Int("analyzed", len(results)-failed),
			slog.Int("failed", failed))
	}

	insights := engine.AggregatedInsights(ctx)
	slog.Info("[Analyzer] Aggregated insights",
		slog.Any("sentiment_counts", insights.Sentiment.Counts),
		slog.Float64("avg_sentiment", insights.Sentiment.AverageScore),
		slog.Any("discourse_counts", insights.Discourse.Counts),
		slog.Int("themes_tracked", len(insights.Themes)),
		slog.Int("regions_tracked", len(insights.Regions)))

	trending, err := engine.TrendingThemes(ctx)
	if err != nil {
		slog.Warn("[Analyzer] Trending computation failed",
			slog.String("error", err.Error()))
		return
	}
	for i, theme := range trending {
		if i >= 5 {
			break
		}
		slog.Info("[Analyzer] Trending theme",
			slog.Int("rank", i+1),
			slog.String("theme", theme.Theme),
			slog.Int("recent_count", theme.RecentCount),
			slog.Float64("delta", theme.Delta))
	}
}
