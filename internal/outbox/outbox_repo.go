package outbox

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "PENDING"
	StatusSent    = "SENT"
	StatusFailed  = "FAILED"
)

const EventCartUpdated = "CART_UPDATED"

type Event struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       []byte
	Status        string
	CreatedAt     time.Time
}

type CreateEventParams struct {
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       []byte
}

//go:generate mockgen -source=outbox_repo.go -destination=../mock/outbox/outbox_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateEvent(ctx context.Context, arg CreateEventParams) error
	ListPending(ctx context.Context, limit int32) ([]Event, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
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

func (r *repository) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	const query = `
		INSERT INTO outbox_events (aggregate_type, aggregate_id, event_type, payload)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.q.ExecContext(ctx, query, arg.AggregateType, arg.AggregateID, arg.EventType, arg.Payload)
	return err
}

func (r *repository) ListPending(ctx context.Context, limit int32) ([]Event, error) {
	const query = `
		SELECT id, aggregate_type, aggregate_id, event_type, payload, status, created_at
		FROM outbox_events
		WHERE status = 'PENDING'
		ORDER BY created_at
		LIMIT $1
	`

	rows, err := r.q.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.AggregateType, &e.AggregateID, &e.EventType, &e.Payload, &e.Status, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE outbox_events SET status = 'SENT', sent_at = now() WHERE id = $1`
	_, err := r.q.ExecContext(ctx, query, id)
	return err
}

func (r *repository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE outbox_events SET status = 'FAILED' WHERE id = $1`
	_, err := r.q.ExecContext(ctx, query, id)
	return err
}
