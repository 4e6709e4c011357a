package producer

import (
	"context"
	"log"
	"time"

	"go-storefront-api/internal/outbox"

	"github.com/segmentio/kafka-go"
)

const (
	defaultPollInterval = 5 * time.Second
	defaultBatchSize    = 25
)

// messageWriter is the slice of kafka.Writer the relay uses, so tests can
// run without a broker.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Config tunes the relay loop. Zero values fall back to the defaults.
type Config struct {
	PollInterval time.Duration
	BatchSize    int32
}

// Relay moves committed cart events from the outbox table to Kafka. The
// rows are inserted in the same transaction as the cart change, so a missed
// poll only delays delivery, it never loses an event.
type Relay struct {
	repo     outbox.Repository
	writer   messageWriter
	interval time.Duration
	batch    int32
}

func NewRelay(repo outbox.Repository, writer messageWriter, cfg Config) *Relay {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}

	return &Relay{
		repo:     repo,
		writer:   writer,
		interval: cfg.PollInterval,
		batch:    cfg.BatchSize,
	}
}

// Run polls the outbox until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	log.Printf("[WORKER] outbox relay polling every %s, batches of %d", r.interval, r.batch)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Drain(ctx); err != nil {
				log.Printf("[WORKER] drain failed: %v", err)
			}
		}
	}
}

// Drain relays one batch of pending events. A publish failure marks that
// event FAILED and moves on, so one bad event cannot wedge the batch.
func (r *Relay) Drain(ctx context.Context) error {
	events, err := r.repo.ListPending(ctx, r.batch)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	log.Printf("[WORKER] relaying %d cart events", len(events))

	for _, event := range events {
		if err := r.publish(ctx, event); err != nil {
			log.Printf("[WORKER] publish failed for %s event %s (cart %s): %v",
				event.EventType, event.ID, event.AggregateID, err)
			_ = r.repo.MarkFailed(ctx, event.ID)
			continue
		}

		if err := r.repo.MarkSent(ctx, event.ID); err != nil {
			log.Printf("[WORKER] could not mark event %s as SENT: %v", event.ID, err)
		}
	}

	return nil
}
