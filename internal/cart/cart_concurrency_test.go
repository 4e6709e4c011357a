package cart_test

import (
	"context"
	"sync"
	"testing"

	"go-storefront-api/internal/cart"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

// memCartStore mirrors the carts table's find-or-insert: the unique owner
// index lets exactly one insert win, and every loser of the race reads the
// winner's row. It counts rows actually inserted.
type memCartStore struct {
	cart.Repository

	mu       sync.Mutex
	byOwner  map[uuid.UUID]cart.Cart
	inserted int
}

func (s *memCartStore) GetOrCreate(ctx context.Context, ownerUserID uuid.UUID) (cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.byOwner[ownerUserID]; ok {
		return c, nil
	}

	c := cart.Cart{ID: uuid.New(), OwnerUserID: ownerUserID}
	s.byOwner[ownerUserID] = c
	s.inserted++
	return c, nil
}

func TestCartRepository_ConcurrentGetOrCreate_SingleCart(t *testing.T) {
	const workers = 50

	store := &memCartStore{byOwner: make(map[uuid.UUID]cart.Cart)}
	ownerID := uuid.New()

	var (
		mu  sync.Mutex
		ids = make(map[uuid.UUID]struct{})
	)

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			c, err := store.GetOrCreate(ctx, ownerID)
			if err != nil {
				return err
			}
			mu.Lock()
			ids[c.ID] = struct{}{}
			mu.Unlock()
			return nil
		})
	}

	assert.NoError(t, g.Wait())
	// Every caller lands on the same cart and only one row was persisted.
	assert.Len(t, ids, 1)
	assert.Equal(t, 1, store.inserted)
}
