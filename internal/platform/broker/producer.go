package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"addisKitchen/internal/shared/notify"
)

const publishTimeout = 5 * time.Second

// KafkaProducer publishes notification events to a single topic. Delivery is
// best-effort: failures are logged and never propagated to the caller.
type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *KafkaProducer) Notify(ctx context.Context, event notify.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Warn("notification encode error", slog.Any("error", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(event.Entity + "." + event.Action),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		slog.Warn("notification publish error",
			slog.String("entity", event.Entity),
			slog.String("action", event.Action),
			slog.Any("error", err),
		)
		return
	}
	slog.Debug("notification published",
		slog.String("entity", event.Entity),
		slog.String("action", event.Action),
		slog.String("outcome", string(event.Outcome)),
	)
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
