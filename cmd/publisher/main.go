// Command publisher pushes a JSON file of harvested items onto the
// raw-content topic, standing in for a harvester during local runs.
//
// Usage: publisher -source-id <uuid> -source-name <name> [-format markdown] items.json
//
// The file holds a JSON array of collected items.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/thermoculture/discourse-engine/config"
	"github.com/thermoculture/discourse-engine/internal/clients"
	"github.com/thermoculture/discourse-engine/internal/logging"
	"github.com/thermoculture/discourse-engine/internal/models"
)

func main() {
	sourceID := flag.String("source-id", "", "source UUID")
	sourceName := flag.String("source-name", "", "source name")
	format := flag.String("format", "", "content format (e.g. markdown)")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	id, err := uuid.Parse(*sourceID)
	if err != nil {
		slog.Error("[Publisher] Invalid source id", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *sourceName == "" || flag.NArg() != 1 {
		slog.Error("[Publisher] Usage: publisher -source-id <uuid> -source-name <name> items.json")
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		slog.Error("[Publisher] Failed to read items file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var items []models.CollectedItem
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Error("[Publisher] Failed to parse items file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cfg := clients.GetKafkaConfig()
	for {
		err := clients.InitKafkaProducer(cfg)
		if err == nil {
			break
		}
		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer clients.CloseKafkaProducer()

	published := 0
	for _, item := range items {
		envelope := models.HarvestEnvelope{
			SourceID:   id,
			SourceName: *sourceName,
			Format:     *format,
			Item:       item,
		}
		if err := clients.PublishEnvelope(envelope); err != nil {
			slog.Error("[Publisher] Failed to publish item",
				slog.String("source_url", item.SourceURL),
				slog.String("error", err.Error()))
			continue
		}
		published++
	}

	slog.Info("[Publisher] Done",
		slog.Int("published", published),
		slog.Int("total", len(items)))
}
