package app

import (
	"context"
	"log"
	"os"

	"github.com/segmentio/kafka-go"

	"go-storefront-api/internal/messaging/kafka/consumer"
)

// RunConsumer reads cart events and keeps the activity counters warm
// until ctx is cancelled.
func RunConsumer(ctx context.Context) error {
	rdb, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 10)
	if err != nil {
		return err
	}
	defer rdb.Close()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   "cart.events",
		GroupID: "storefront-stats",
	})
	defer reader.Close()

	log.Println("[CONSUMER] cart event consumer started")
	consumer.ConsumeMessages(ctx, reader, rdb)
	log.Println("[CONSUMER] cart event consumer stopped")

	return nil
}
