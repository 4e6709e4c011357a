package consumer

import (
	"context"
	"log"

	"go-storefront-api/internal/outbox"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

func ConsumeMessages(ctx context.Context, reader *kafka.Reader, rdb *redis.Client) {
	log.Println("[CONSUMER] Started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[CONSUMER] Error fetching message: %v", err)
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		if eventType == outbox.EventCartUpdated {
			if err := handleCartUpdated(ctx, msg.Value, rdb); err != nil {
				log.Printf("[CONSUMER] Error handling CART_UPDATED: %v", err)
				continue
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Printf("[CONSUMER] Error committing message: %v", err)
		}
	}
}

func getHeader(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
