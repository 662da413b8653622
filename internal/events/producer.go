// Package events publishes captured orders to a Kafka topic for downstream
// consumers. Publishing is fire-and-forget: a failed delivery is logged and
// never affects order capture.
package events

import (
	"context"
	"dan_assistant/internal/models"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl/plain"
)

type Producer struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

func NewProducer(brokers []string, topic, username, password string, logger *slog.Logger) (*Producer, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.AllowAutoTopicCreation(),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(10 * time.Millisecond),
	}

	if username != "" && password != "" {
		opts = append(opts, kgo.SASL(plain.Auth{
			User: username,
			Pass: password,
		}.AsMechanism()))
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, err
	}

	return &Producer{client: client, topic: topic, logger: logger}, nil
}

// PublishOrder enqueues the order as a JSON record keyed by order id.
func (p *Producer) PublishOrder(ctx context.Context, order models.Order) {
	payload, err := order.MarshalBinary()
	if err != nil {
		p.logger.Warn("failed to encode order event", "order_id", order.ID, "error", err)
		return
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(order.ID),
		Value: payload,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.logger.Warn("order event publish failed", "order_id", order.ID, "error", err)
		}
	})
}

func (p *Producer) Close() {
	p.client.Close()
}
