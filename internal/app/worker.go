package app

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"go-storefront-api/internal/messaging/kafka/producer"
	"go-storefront-api/internal/outbox"
)

// RunWorker drives the outbox relay until ctx is cancelled.
func RunWorker(ctx context.Context) error {
	db, err := ConnectDBWithRetry(os.Getenv("DATABASE_URL"), 10)
	if err != nil {
		return err
	}
	defer db.Close()

	writer, err := ConnectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), 10)
	if err != nil {
		return err
	}
	defer writer.Close()

	relay := producer.NewRelay(outbox.NewRepository(db), writer, producer.Config{
		PollInterval: envDuration("OUTBOX_POLL_INTERVAL"),
		BatchSize:    envInt32("OUTBOX_BATCH_SIZE"),
	})

	log.Println("[WORKER] outbox relay started")
	relay.Run(ctx)
	log.Println("[WORKER] outbox relay stopped")

	return nil
}

func envDuration(key string) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("[WORKER] ignoring %s=%q: %v", key, raw, err)
		return 0
	}
	return d
}

func envInt32(key string) int32 {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		log.Printf("[WORKER] ignoring %s=%q: %v", key, raw, err)
		return 0
	}
	return int32(n)
}
