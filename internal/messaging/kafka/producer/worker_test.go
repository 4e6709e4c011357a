package producer_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go-storefront-api/internal/messaging/kafka/producer"
	outboxmock "go-storefront-api/internal/mock/outbox"
	"go-storefront-api/internal/outbox"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeWriter struct {
	mu   sync.Mutex
	err  error
	msgs []kafka.Message
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func TestRelay_Drain(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes_batch_and_marks_sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outboxmock.NewMockRepository(ctrl)
		writer := &fakeWriter{}

		cartID := uuid.New()
		events := []outbox.Event{
			{ID: uuid.New(), AggregateType: "cart", AggregateID: cartID, EventType: outbox.EventCartUpdated, Payload: []byte(`{"total":9.99}`)},
			{ID: uuid.New(), AggregateType: "cart", AggregateID: cartID, EventType: outbox.EventCartUpdated, Payload: []byte(`{"total":34.99}`)},
		}

		repo.EXPECT().ListPending(ctx, int32(25)).Return(events, nil)
		repo.EXPECT().MarkSent(ctx, events[0].ID).Return(nil)
		repo.EXPECT().MarkSent(ctx, events[1].ID).Return(nil)

		relay := producer.NewRelay(repo, writer, producer.Config{})

		assert.NoError(t, relay.Drain(ctx))
		assert.Len(t, writer.msgs, 2)
		// Messages are keyed by cart id so one cart's events stay ordered.
		assert.Equal(t, cartID.String(), string(writer.msgs[0].Key))
		assert.Equal(t, outbox.EventCartUpdated, string(writer.msgs[0].Headers[0].Value))
	})

	t.Run("publish_failure_marks_failed_and_continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outboxmock.NewMockRepository(ctrl)
		writer := &fakeWriter{err: errors.New("broker unreachable")}

		events := []outbox.Event{
			{ID: uuid.New(), AggregateType: "cart", AggregateID: uuid.New(), EventType: outbox.EventCartUpdated},
			{ID: uuid.New(), AggregateType: "cart", AggregateID: uuid.New(), EventType: outbox.EventCartUpdated},
		}

		repo.EXPECT().ListPending(ctx, int32(25)).Return(events, nil)
		repo.EXPECT().MarkFailed(ctx, events[0].ID).Return(nil)
		repo.EXPECT().MarkFailed(ctx, events[1].ID).Return(nil)

		relay := producer.NewRelay(repo, writer, producer.Config{})

		assert.NoError(t, relay.Drain(ctx))
		assert.Empty(t, writer.msgs)
	})

	t.Run("empty_outbox_is_a_no_op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outboxmock.NewMockRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(ctx, int32(25)).Return(nil, nil)

		relay := producer.NewRelay(repo, writer, producer.Config{})

		assert.NoError(t, relay.Drain(ctx))
		assert.Empty(t, writer.msgs)
	})

	t.Run("batch_size_from_config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outboxmock.NewMockRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(ctx, int32(3)).Return(nil, nil)

		relay := producer.NewRelay(repo, writer, producer.Config{BatchSize: 3})

		assert.NoError(t, relay.Drain(ctx))
	})

	t.Run("list_error_surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outboxmock.NewMockRepository(ctrl)

		repo.EXPECT().ListPending(ctx, int32(25)).Return(nil, errors.New("db down"))

		relay := producer.NewRelay(repo, &fakeWriter{}, producer.Config{})

		assert.Error(t, relay.Drain(ctx))
	})
}
