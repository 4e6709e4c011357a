package producer

import (
	"context"

	"go-storefront-api/internal/outbox"

	"github.com/segmentio/kafka-go"
)

// publish keys the message by cart id so every event for one cart lands on
// the same partition and consumers see them in order.
func (r *Relay) publish(ctx context.Context, event outbox.Event) error {
	msg := kafka.Message{
		Key:   []byte(event.AggregateID.String()),
		Value: event.Payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		},
	}

	return r.writer.WriteMessages(ctx, msg)
}
