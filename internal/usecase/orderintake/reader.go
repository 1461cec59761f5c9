// Package orderintake consumes the order feed and converts payloads into
// engine orders.
package orderintake

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
	"github.com/techcsc21/trade4u-sub008/pkg/config"
	"github.com/techcsc21/trade4u-sub008/pkg/logger"
)

//go:generate mockgen -source=reader.go -destination=mock/reader_mock.go -package=mock

// Intake is the order feed the engine drains. Malformed payloads never
// reach the caller; they are dropped inside Next with a logged error.
type Intake interface {
	Next(ctx context.Context) (*orderv1.Order, error)
	Close() error
}

// Reader consumes order payloads from the kafka order topic.
type Reader struct {
	kafkaReader *kafka.Reader
	logger      logger.Interface
}

// NewReader creates a kafka-backed intake for the configured order topic.
func NewReader(cfg config.KafkaConfig, log logger.Interface) *Reader {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.Topic,
		GroupID:     cfg.GroupID,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})

	return &Reader{
		kafkaReader: kafkaReader,
		logger:      log,
	}
}

// Next blocks for the next well-formed order. Messages that fail to decode
// or validate are logged and skipped, so the feed never stalls on a bad
// payload. The returned error is only ever a transport or context error.
func (r *Reader) Next(ctx context.Context) (*orderv1.Order, error) {
	for {
		msg, err := r.kafkaReader.ReadMessage(ctx)
		if err != nil {
			return nil, err
		}

		var payload orderv1.PlaceOrderRequest
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			r.logger.ErrorContext(ctx, err,
				logger.NewField("operation", "UnmarshalOrder"),
				logger.NewField("offset", msg.Offset),
			)
			continue
		}
		payload.Offset = msg.Offset

		order, err := payload.ToOrder()
		if err != nil {
			r.logger.ErrorContext(ctx, err,
				logger.NewField("operation", "ValidateOrder"),
				logger.NewField("offset", msg.Offset),
				logger.NewField("order_id", payload.OrderID),
			)
			continue
		}

		r.logger.DebugContext(ctx, "order received",
			logger.NewField("order_id", order.ID),
			logger.NewField("symbol", order.Symbol),
			logger.NewField("side", order.Side),
			logger.NewField("type", order.Type),
			logger.NewField("offset", msg.Offset),
		)
		return order, nil
	}
}

// Close shuts the underlying kafka reader down.
func (r *Reader) Close() error {
	if err := r.kafkaReader.Close(); err != nil {
		r.logger.Error(err, logger.NewField("operation", "Close"))
		return err
	}
	return nil
}
