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
	"github.com/thermoculture/discourse-engine/internal/clients"
	"github.com/thermoculture/discourse-engine/internal/consumers"
	"github.com/thermoculture/discourse-engine/internal/db"
	"github.com/thermoculture/discourse-engine/internal/logging"
	"github.com/thermoculture/discourse-engine/internal/pipeline"
)

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

	for {
		_, err := clients.InitValkey()
		if err == nil {
			break
		}
		slog.Warn("Valkey init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer clients.CloseValkey()

	cfg := clients.GetKafkaConfig()
	for {
		err := clients.InitKafkaConsumer(cfg)
		if err == nil {
			break
		}
		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer clients.CloseKafkaConsumer()

	store := db.NewStore(db.Pool)
	consumer := consumers.NewRawContentConsumer(
		pipeline.NewPipeline(store),
		analysis.NewEngine(store),
		clients.GetValkeyClient(),
	)
	consumer.Start(ctx)
}
