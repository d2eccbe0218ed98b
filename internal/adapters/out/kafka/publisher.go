package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the slice of kafka.Writer the publisher needs. Tests
// substitute a fake.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher on top of a Kafka topic.
// Messages are keyed by tracking id, so all events of one cargo land in the
// same partition and stay ordered.
type Publisher struct {
	writer messageWriter
	topic  string
}

// NewPublisher creates a publisher writing to the given topic on the given
// brokers.
func NewPublisher(brokers []string, topic string) *Publisher {
	return newPublisherWithWriter(&kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.LeastBytes{},
	}, topic)
}

func newPublisherWithWriter(writer messageWriter, topic string) *Publisher {
	return &Publisher{
		writer: writer,
		topic:  topic,
	}
}

// PublishCargoHandled publishes the registered handling event together with
// the delivery snapshot derived from it.
func (p *Publisher) PublishCargoHandled(
	ctx context.Context,
	event *handling.HandlingEvent,
	delivery cargo.Delivery,
) error {
	payload, err := json.Marshal(newCargoHandledMessage(event, delivery))
	if err != nil {
		return fmt.Errorf("marshal cargo handled message: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.TrackingID().String()),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}

	return nil
}

// Close flushes pending messages and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
