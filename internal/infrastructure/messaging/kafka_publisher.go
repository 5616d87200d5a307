package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fundline/pricing-service/internal/domain/event"
	"github.com/fundline/pricing-service/internal/platform/kafka"
)

// KafkaEventPublisher implements port.EventPublisher on top of the shared
// Kafka producer. Events are keyed by aggregate ID so all events for one
// quote land in the same partition, in order.
type KafkaEventPublisher struct {
	producer *kafka.Producer
	topic    string
}

// NewKafkaEventPublisher creates a publisher writing to the given topic.
func NewKafkaEventPublisher(producer *kafka.Producer, topic string) *KafkaEventPublisher {
	return &KafkaEventPublisher{producer: producer, topic: topic}
}

// Publish serializes and sends the events as a single batch.
func (p *KafkaEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", ev.EventType(), err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(ev.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_type":   ev.EventType(),
				"tenant_id":    ev.TenantID(),
				"content-type": "application/json",
			},
		})
	}

	return p.producer.Publish(ctx, p.topic, messages...)
}
