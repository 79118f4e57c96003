package tradepublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/segmentio/kafka-go"

	orderbookv1 "github.com/quantgrid/trading-engine/internal/domain/orderbook/v1"
	"github.com/quantgrid/trading-engine/pkg/config"
	"github.com/quantgrid/trading-engine/pkg/logger"
)

// Publisher writes executed trades to a Kafka topic as JSON events. Each
// event is stamped with a ULID so downstream consumers can dedupe and order
// the feed.
type Publisher struct {
	kafkaWriter *kafka.Writer
	logger      logger.Interface
}

// New creates a Kafka publisher for the trade feed.
func New(cfg config.TradeFeedConfig, log logger.Interface) *Publisher {
	kafkaWriter := kafka.NewWriter(kafka.WriterConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})

	return &Publisher{
		kafkaWriter: kafkaWriter,
		logger:      log,
	}
}

// tradeEvent is the wire form of one executed trade.
type tradeEvent struct {
	TradeID    string    `json:"trade_id"`
	Bid        tradeSide `json:"bid"`
	Ask        tradeSide `json:"ask"`
	OccurredAt time.Time `json:"occurred_at"`
}

type tradeSide struct {
	OrderID  orderbookv1.OrderID  `json:"order_id"`
	Price    orderbookv1.Price    `json:"price"`
	Quantity orderbookv1.Quantity `json:"quantity"`
}

// PublishTrades writes one message per trade. The batch either fully
// succeeds or returns the writer's error; callers treat failures as
// log-and-continue.
func (p *Publisher) PublishTrades(ctx context.Context, trades orderbookv1.Trades) error {
	if len(trades) == 0 {
		return nil
	}

	now := time.Now().UTC()
	messages := make([]kafka.Message, 0, len(trades))
	for _, trade := range trades {
		event := tradeEvent{
			TradeID:    ulid.Make().String(),
			Bid:        tradeSide{OrderID: trade.Bid.OrderID, Price: trade.Bid.Price, Quantity: trade.Bid.Quantity},
			Ask:        tradeSide{OrderID: trade.Ask.OrderID, Price: trade.Ask.Price, Quantity: trade.Ask.Quantity},
			OccurredAt: now,
		}

		value, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal trade event: %w", err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(event.TradeID),
			Value: value,
		})
	}

	if err := p.kafkaWriter.WriteMessages(ctx, messages...); err != nil {
		p.logger.Error(err,
			logger.Field{Key: "trades", Value: len(trades)},
		)
		return fmt.Errorf("failed to publish trade events: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.kafkaWriter.Close()
}
