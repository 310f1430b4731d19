// Package consumers wires the Kafka raw-content topic into the ingestion
// pipeline and analysis engine.
package consumers

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/google/uuid"

	"github.com/thermoculture/discourse-engine/internal/analysis"
	"github.com/thermoculture/discourse-engine/internal/clients"
	"github.com/thermoculture/discourse-engine/internal/models"
	"github.com/thermoculture/discourse-engine/internal/pipeline"
	"github.com/thermoculture/discourse-engine/internal/textnorm"
	"github.com/thermoculture/discourse-engine/internal/utils"
)

type bufferedItem struct {
	envelope models.HarvestEnvelope
	msg      *kafka.Message
}

// RawContentConsumer buffers harvested items into small batches, ingests
// each batch per source, and immediately analyzes whatever came out new.
// Valkey suppresses Kafka redeliveries; the fingerprint index remains the
// dedup authority.
type RawContentConsumer struct {
	pipeline *pipeline.Pipeline
	engine   *analysis.Engine
	valkey   *clients.ValkeyClient
	buffer   *utils.BatchBuffer[bufferedItem]
}

func NewRawContentConsumer(p *pipeline.Pipeline, e *analysis.Engine, vc *clients.ValkeyClient) *RawContentConsumer {
	return &RawContentConsumer{
		pipeline: p,
		engine:   e,
		valkey:   vc,
		buffer:   utils.NewBatchBuffer[bufferedItem](),
	}
}

func (c *RawContentConsumer) Start(ctx context.Context) {
	slog.Info("[RawContentConsumer] Listening for messages...")

	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[RawContentConsumer] Stopping consumer...")
			c.flush(context.Background())
			return
		case <-ticker.C:
			c.flush(ctx)
		default:
			msg, err := clients.NextMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				slog.Warn("[RawContentConsumer] Failed to read message",
					slog.String("error", err.Error()))
				time.Sleep(2 * time.Second)
				continue
			}
			if msg == nil {
				continue
			}

			var envelope models.HarvestEnvelope
			if err := json.Unmarshal(msg.Value, &envelope); err != nil {
				slog.Warn("[RawContentConsumer] Dropping malformed message",
					slog.String("error", err.Error()))
				c.commit(msg)
				continue
			}

			if c.valkey.IsProcessed(ctx, envelope.SourceName, envelope.Item.SourceURL) {
				c.commit(msg)
				continue
			}

			if strings.EqualFold(envelope.Format, "markdown") {
				envelope.Item.Content = textnorm.StripMarkdown(envelope.Item.Content)
			}

			c.buffer.Add(bufferedItem{envelope: envelope, msg: msg})
			if c.buffer.Size() >= utils.BATCH_SIZE {
				c.flush(ctx)
			}
		}
	}
}

// flush ingests the buffered batch grouped per source, analyzes the new
// records, then marks and commits each message. On an ingest error the
// source's messages stay uncommitted so Kafka redelivers them.
func (c *RawContentConsumer) flush(ctx context.Context) {
	batch := c.buffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	bySource := make(map[uuid.UUID][]bufferedItem)
	var order []uuid.UUID
	for _, item := range batch {
		id := item.envelope.SourceID
		if _, seen := bySource[id]; !seen {
			order = append(order, id)
		}
		bySource[id] = append(bySource[id], item)
	}

	for _, sourceID := range order {
		group := bySource[sourceID]

		items := make([]models.CollectedItem, len(group))
		for i, buffered := range group {
			items[i] = buffered.envelope.Item
		}

		stats, fresh, err := c.pipeline.IngestItems(ctx, sourceID, items)
		if err != nil {
			slog.Error("[RawContentConsumer] Ingestion failed, leaving offsets uncommitted",
				slog.String("source_id", sourceID.String()),
				slog.String("error", err.Error()))
			continue
		}

		if len(fresh) > 0 {
			c.engine.AnalyzeBatch(ctx, fresh)
		}

		slog.Info("[RawContentConsumer] Batch processed",
			slog.String("source", group[0].envelope.SourceName),
			slog.Int("total", stats.Total),
			slog.Int("new", stats.New),
			slog.Int("duplicates", stats.Duplicates))

		for _, buffered := range group {
			if err := c.valkey.MarkProcessed(ctx, buffered.envelope.SourceName, buffered.envelope.Item.SourceURL); err != nil {
				slog.Warn("[RawContentConsumer] Failed to mark item processed",
					slog.String("source_url", buffered.envelope.Item.SourceURL),
					slog.String("error", err.Error()))
			}
			c.commit(buffered.msg)
		}
	}
}

func (c *RawContentConsumer) commit(msg *kafka.Message) {
	if err := clients.CommitMessage(msg); err != nil {
		slog.Warn("[RawContentConsumer] Failed to commit offset",
			slog.String("error", err.Error()))
	}
}
