package localcart

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Pusher ships the full local item list to the authoritative store. Pushes
// are best-effort; the cache never waits on them and never rolls back.
type Pusher interface {
	Push(ctx context.Context, items []Entry, seq int64) error
}

const GuestKey = "guest"

// Cache is the client-held mirror of cart state. It is scoped to one owner
// key at a time (guest or an authenticated user), guarded by a mutex, and
// stamps every mutation with a monotonically increasing sequence so the
// server can discard pushes that complete out of order.
type Cache struct {
	mu       sync.Mutex
	ownerKey string
	store    Store
	entries  []Entry
	seq      int64
	pusher   Pusher
	logger   *zap.Logger
}

func NewCache(store Store, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		ownerKey: GuestKey,
		store:    store,
		entries:  []Entry{},
		logger:   logger,
	}
}

// Hydrate loads the persisted mirror for the current owner.
func (c *Cache) Hydrate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.store.Load(ctx, c.ownerKey)
	if err != nil {
		return err
	}
	c.entries = entries
	return nil
}

// Rebind switches the cache to a different owner without carrying entries
// across; every auth transition goes through here.
func (c *Cache) Rebind(ownerKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ownerKey = ownerKey
	c.entries = []Entry{}
	c.seq = 0
}

func (c *Cache) AttachPusher(p Pusher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pusher = p
}

func (c *Cache) DetachPusher() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pusher = nil
}

func (c *Cache) OwnerKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ownerKey
}

func (c *Cache) Seq() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Items returns a copy; callers never see internal state.
func (c *Cache) Items() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Total sums the mirror with decimal arithmetic so the optimistic UI and
// the server's NUMERIC column agree to the penny.
func (c *Cache) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, e := range c.entries {
		line := decimal.NewFromFloat(e.Price).Mul(decimal.NewFromInt(int64(e.Qty)))
		total = total.Add(line)
	}
	return total.InexactFloat64()
}

// AddItem increments an existing line or appends a new one with qty 1.
func (c *Cache) AddItem(ctx context.Context, product Entry) {
	c.mu.Lock()

	found := false
	for i := range c.entries {
		if c.entries[i].ID == product.ID {
			c.entries[i].Qty++
			found = true
			break
		}
	}
	if !found {
		product.Qty = 1
		c.entries = append(c.entries, product)
	}

	c.afterMutationLocked(ctx)
	c.mu.Unlock()
}

// RemoveItem decrements a line, dropping it entirely at quantity zero. A
// missing product is a no-op.
func (c *Cache) RemoveItem(ctx context.Context, productID string) {
	c.mu.Lock()

	changed := false
	for i := range c.entries {
		if c.entries[i].ID != productID {
			continue
		}
		if c.entries[i].Qty <= 1 {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
		} else {
			c.entries[i].Qty--
		}
		changed = true
		break
	}

	if changed {
		c.afterMutationLocked(ctx)
	}
	c.mu.Unlock()
}

// DeleteItem drops a line outright regardless of quantity.
func (c *Cache) DeleteItem(ctx context.Context, productID string) {
	c.mu.Lock()

	changed := false
	for i := range c.entries {
		if c.entries[i].ID == productID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			changed = true
			break
		}
	}

	if changed {
		c.afterMutationLocked(ctx)
	}
	c.mu.Unlock()
}

// ReplaceFromServer overwrites the mirror with the authoritative cart
// (server-wins) and adopts the server's push sequence as the baseline.
// The server keeps its sequence across sessions, so starting below it
// would get every push of a fresh session rejected as stale. It does not
// push back.
func (c *Cache) ReplaceFromServer(ctx context.Context, items []ServerItem, seq int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = EntriesFromServer(items)
	c.seq = seq
	return c.store.Save(ctx, c.ownerKey, c.entries)
}

// Reset clears the mirror and its persisted copy. The server cart is not
// touched.
func (c *Cache) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = []Entry{}
	c.seq = 0
	return c.store.Clear(ctx, c.ownerKey)
}

// afterMutationLocked persists the mirror and fires the best-effort push.
// Persist failures are logged rather than surfaced; the in-memory state is
// already the user's truth.
func (c *Cache) afterMutationLocked(ctx context.Context) {
	c.seq++

	if err := c.store.Save(ctx, c.ownerKey, c.entries); err != nil {
		c.logger.Warn("local cart persist failed",
			zap.String("owner", c.ownerKey),
			zap.Error(err),
		)
	}

	if c.pusher == nil {
		return
	}

	snapshot := make([]Entry, len(c.entries))
	copy(snapshot, c.entries)
	seq := c.seq
	owner := c.ownerKey
	pusher := c.pusher

	go func() {
		if err := pusher.Push(context.WithoutCancel(ctx), snapshot, seq); err != nil {
			c.logger.Warn("cart push failed",
				zap.String("owner", owner),
				zap.Int64("seq", seq),
				zap.Error(err),
			)
		}
	}()
}
