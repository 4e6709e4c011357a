package cart

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=cart_repo.go -destination=../mock/cart/cart_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	GetOrCreate(ctx context.Context, ownerUserID uuid.UUID) (Cart, error)
	GetByOwner(ctx context.Context, ownerUserID uuid.UUID) (Cart, error)
	ListItems(ctx context.Context, cartID uuid.UUID) ([]CartItem, error)

	UpsertItemIncrement(ctx context.Context, arg UpsertItemParams) (CartItem, error)
	ReplaceAllItems(ctx context.Context, cartID uuid.UUID, items []ItemInput) error
	DeleteItem(ctx context.Context, cartID uuid.UUID, productID string) (int64, error)

	RecomputeTotal(ctx context.Context, cartID uuid.UUID) (float64, error)
	AdvancePushSeq(ctx context.Context, cartID uuid.UUID, seq int64) (bool, error)
	CountCarts(ctx context.Context) (int64, error)
}

type Cart struct {
	ID          uuid.UUID
	OwnerUserID uuid.UUID
	Total       float64
	PushSeq     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CartItem struct {
	ID          uuid.UUID
	CartID      uuid.UUID
	ProductID   string
	ProductName string
	Quantity    int32
	Price       float64
}

type UpsertItemParams struct {
	CartID      uuid.UUID
	ProductID   string
	ProductName string
	Price       float64
}

type ItemInput struct {
	ProductID   string
	ProductName string
	Quantity    int32
	Price       float64
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type repository struct {
	q querier
}

func NewRepository(db *sql.DB) Repository {
	return &repository{q: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{q: tx}
}

const selectCart = `
	SELECT id, owner_user_id, total, push_seq, created_at, updated_at
	FROM carts
	WHERE owner_user_id = $1
`

// GetOrCreate is the atomic find-or-insert. The insert races safely against
// concurrent callers: the unique constraint on owner_user_id makes every
// loser of the race fall through to the select.
func (r *repository) GetOrCreate(ctx context.Context, ownerUserID uuid.UUID) (Cart, error) {
	const insert = `
		INSERT INTO carts (owner_user_id)
		VALUES ($1)
		ON CONFLICT (owner_user_id) DO NOTHING
	`
	if _, err := r.q.ExecContext(ctx, insert, ownerUserID); err != nil {
		return Cart{}, err
	}

	return r.GetByOwner(ctx, ownerUserID)
}

func (r *repository) GetByOwner(ctx context.Context, ownerUserID uuid.UUID) (Cart, error) {
	var out Cart
	err := r.q.QueryRowContext(ctx, selectCart, ownerUserID).Scan(
		&out.ID,
		&out.OwnerUserID,
		&out.Total,
		&out.PushSeq,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	return out, err
}

func (r *repository) ListItems(ctx context.Context, cartID uuid.UUID) ([]CartItem, error) {
	const query = `
		SELECT id, cart_id, product_id, product_name, quantity, price
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY position
	`

	rows, err := r.q.QueryContext(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]CartItem, 0)
	for rows.Next() {
		var it CartItem
		if err := rows.Scan(&it.ID, &it.CartID, &it.ProductID, &it.ProductName, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpsertItemIncrement adds a line with quantity 1 or bumps the existing one
// in place. Two rapid adds for the same product both land: the increment
// happens inside the database, not in a read-modify-write.
func (r *repository) UpsertItemIncrement(ctx context.Context, arg UpsertItemParams) (CartItem, error) {
	const query = `
		INSERT INTO cart_items (cart_id, product_id, product_name, quantity, price)
		VALUES ($1, $2, $3, 1, $4)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + 1
		RETURNING id, cart_id, product_id, product_name, quantity, price
	`

	var it CartItem
	err := r.q.QueryRowContext(ctx, query, arg.CartID, arg.ProductID, arg.ProductName, arg.Price).Scan(
		&it.ID,
		&it.CartID,
		&it.ProductID,
		&it.ProductName,
		&it.Quantity,
		&it.Price,
	)
	return it, err
}

func (r *repository) ReplaceAllItems(ctx context.Context, cartID uuid.UUID, items []ItemInput) error {
	const del = `DELETE FROM cart_items WHERE cart_id = $1`
	if _, err := r.q.ExecContext(ctx, del, cartID); err != nil {
		return err
	}

	const insert = `
		INSERT INTO cart_items (cart_id, product_id, product_name, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, it := range items {
		if _, err := r.q.ExecContext(ctx, insert, cartID, it.ProductID, it.ProductName, it.Quantity, it.Price); err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) DeleteItem(ctx context.Context, cartID uuid.UUID, productID string) (int64, error) {
	const query = `DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`
	res, err := r.q.ExecContext(ctx, query, cartID, productID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// RecomputeTotal derives the total from the line items on every mutation.
// The client's own total is never written through.
func (r *repository) RecomputeTotal(ctx context.Context, cartID uuid.UUID) (float64, error) {
	const query = `
		UPDATE carts
		SET total = COALESCE((
			SELECT SUM(quantity * price) FROM cart_items WHERE cart_id = $1
		), 0), updated_at = now()
		WHERE id = $1
		RETURNING total
	`

	var total float64
	err := r.q.QueryRowContext(ctx, query, cartID).Scan(&total)
	return total, err
}

// AdvancePushSeq reports whether seq is newer than the last applied push.
// A false return means the caller holds a stale full-cart push and must
// leave the item list alone.
func (r *repository) AdvancePushSeq(ctx context.Context, cartID uuid.UUID, seq int64) (bool, error) {
	const query = `
		UPDATE carts
		SET push_seq = $2, updated_at = now()
		WHERE id = $1 AND push_seq < $2
	`

	res, err := r.q.ExecContext(ctx, query, cartID, seq)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *repository) CountCarts(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM carts`

	var n int64
	err := r.q.QueryRowContext(ctx, query).Scan(&n)
	return n, err
}
