package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/thermoculture/discourse-engine/internal/models"
)

// KAFKA_TOPIC_RAW_CONTENT carries HarvestEnvelope JSON from harvesters,
// keyed by source.
const KAFKA_TOPIC_RAW_CONTENT = "raw-content"

type KafkaConfig struct {
	Broker  string
	GroupID string
}

func GetKafkaConfig() KafkaConfig {
	return KafkaConfig{
		Broker:  os.Getenv("KAFKA_BROKER"),
		GroupID: os.Getenv("KAFKA_GROUP_ID"),
	}
}

var (
	kafkaProducer *kafka.Producer
	kafkaConsumer *kafka.Consumer
)

func InitKafkaProducer(cfg KafkaConfig) error {
	slog.Info("[KafkaClient] Initializing Kafka Producer...")

	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":   cfg.Broker,
		"security.protocol":   "PLAINTEXT",
		"api.version.request": "true",
		"enable.idempotence":  true,
		"acks":                "all",
	})
	if err != nil {
		return fmt.Errorf("creating kafka producer: %w", err)
	}

	kafkaProducer = p
	slog.Info("[KafkaClient] Kafka Producer initialized successfully")
	return nil
}

func CloseKafkaProducer() {
	if kafkaProducer != nil {
		if remaining := kafkaProducer.Flush(5000); remaining > 0 {
			slog.Warn("[KafkaClient] Not all messages were delivered before shutdown",
				slog.Int("remaining", remaining))
		}
		kafkaProducer.Close()
	}
}

// PublishEnvelope sends one harvested item to the raw-content topic,
// keyed by its source so a source's items stay ordered.
func PublishEnvelope(envelope models.HarvestEnvelope) error {
	if kafkaProducer == nil {
		return errors.New("kafka producer has not been initialized")
	}

	jsonData, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshaling envelope: %w", err)
	}

	topic := KAFKA_TOPIC_RAW_CONTENT
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(envelope.SourceID.String()),
		Value:          jsonData,
	}

	for i := 0; i < 3; i++ {
		if err = kafkaProducer.Produce(msg, nil); err == nil {
			return nil
		}
		slog.Warn("[KafkaClient] Failed to produce message, retrying...",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		time.Sleep(time.Second)
	}
	return fmt.Errorf("producing envelope: %w", err)
}

func InitKafkaConsumer(cfg KafkaConfig) error {
	slog.Info("[KafkaClient] Initializing Kafka Consumer...",
		slog.String("broker", cfg.Broker),
		slog.String("group_id", cfg.GroupID),
		slog.String("topic", KAFKA_TOPIC_RAW_CONTENT))

	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  cfg.Broker,
		"group.id":           cfg.GroupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": false,
	})
	if err != nil {
		return fmt.Errorf("creating kafka consumer: %w", err)
	}

	if err := c.SubscribeTopics([]string{KAFKA_TOPIC_RAW_CONTENT}, nil); err != nil {
		return fmt.Errorf("subscribing to %s: %w", KAFKA_TOPIC_RAW_CONTENT, err)
	}

	kafkaConsumer = c
	slog.Info("[KafkaClient] Kafka Consumer initialized successfully")
	return nil
}

func CloseKafkaConsumer() {
	if kafkaConsumer != nil {
		if err := kafkaConsumer.Close(); err != nil {
			slog.Warn("[KafkaClient] Failed to close consumer",
				slog.String("error", err.Error()))
		}
	}
}

// NextMessage polls the raw-content topic. A poll timeout returns
// (nil, nil) so the caller's loop can service its ticker.
func NextMessage(ctx context.Context) (*kafka.Message, error) {
	if kafkaConsumer == nil {
		return nil, errors.New("kafka consumer has not been initialized")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	msg, err := kafkaConsumer.ReadMessage(time.Second)
	if err != nil {
		var kafkaErr kafka.Error
		if errors.As(err, &kafkaErr) {
			if kafkaErr.Code() == kafka.ErrTimedOut {
				return nil, nil
			}
			if kafkaErr.Code() == kafka.ErrAllBrokersDown {
				slog.Error("[KafkaClient] All Kafka brokers are down")
				return nil, err
			}
		}
		return nil, err
	}
	return msg, nil
}

func CommitMessage(msg *kafka.Message) error {
	if kafkaConsumer == nil {
		return errors.New("kafka consumer has not been initialized")
	}

	if _, err := kafkaConsumer.CommitMessage(msg); err != nil {
		slog.Warn("[KafkaClient] Failed to commit offset",
			slog.Int("partition", int(msg.TopicPartition.Partition)),
			slog.String("offset", msg.TopicPartition.Offset.String()),
			slog.String("error", err.Error()))
		return err
	}
	return nil
}
