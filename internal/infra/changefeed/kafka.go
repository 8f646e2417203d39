package changefeed

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"pureflow/config"
	"pureflow/internal/domain/repository"
	"pureflow/internal/errors"
)

// kafkaMessageWriter abstracts kafka.Writer for testability.
type kafkaMessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaMessageReader abstracts kafka.Reader for testability.
type kafkaMessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// KafkaFeed carries change events over a shared Kafka topic. Events are keyed
// by table/row id so per-document ordering holds within a partition, but
// consumers must still tolerate duplicates and reordering relative to their
// own local writes.
type KafkaFeed struct {
	writer    kafkaMessageWriter
	newReader func() kafkaMessageReader
	logger    *slog.Logger
}

// NewKafkaFeed builds a feed on the configured brokers. Each device consumes
// under its own group id so every device sees every event.
func NewKafkaFeed(cfg *config.ChangeFeedConfig, logger *slog.Logger) *KafkaFeed {
	groupID := cfg.GroupID
	if groupID == "" {
		groupID = "pureflow-" + uuid.NewString()
	}

	return &KafkaFeed{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		newReader: func() kafkaMessageReader {
			return kafka.NewReader(kafka.ReaderConfig{
				Brokers:  cfg.Brokers,
				GroupID:  groupID,
				Topic:    cfg.Topic,
				MinBytes: 1,
				MaxBytes: 10 << 20,
				MaxWait:  500 * time.Millisecond,
			})
		},
		logger: logger,
	}
}

// NewKafkaFeedWith injects transport fakes for tests.
func NewKafkaFeedWith(w kafkaMessageWriter, newReader func() kafkaMessageReader, logger *slog.Logger) *KafkaFeed {
	return &KafkaFeed{writer: w, newReader: newReader, logger: logger}
}

// Publish emits the event keyed by table and row id.
func (f *KafkaFeed) Publish(ctx context.Context, event repository.ChangeEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Table + "/" + rowID(event.Row)),
		Value: value,
	}
	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "publish change event")
	}

	return nil
}

// Subscribe consumes the topic in a background goroutine until ctx is
// cancelled, handing fn every event for the given table. Undecodable messages
// are skipped: at-least-once delivery means a poison message must never stall
// the feed.
func (f *KafkaFeed) Subscribe(ctx context.Context, table string, fn func(repository.ChangeEvent)) error {
	reader := f.newReader()

	go func() {
		defer reader.Close()

		for {
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				f.logger.Warn("change feed read failed, retrying",
					slog.Any("error", err),
				)
				select {
				case <-ctx.Done():
					return
				case <-time.After(time.Second):
				}

				continue
			}

			var event repository.ChangeEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				f.logger.Warn("skipping undecodable change event",
					slog.Any("error", err),
				)

				continue
			}
			if event.Table != table {
				continue
			}

			fn(event)
		}
	}()

	return nil
}

// Close releases the writer. Readers close with their subscription contexts.
func (f *KafkaFeed) Close() error {
	return f.writer.Close()
}

// rowID extracts the row's id field for partition keying, falling back to an
// empty key when the row is malformed.
func rowID(row json.RawMessage) string {
	var partial struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(row, &partial); err != nil {
		return ""
	}

	return partial.ID
}
