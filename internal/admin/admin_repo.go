package admin

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	ListUsers(ctx context.Context) ([]UserRecord, error)
	CountUsers(ctx context.Context) (int64, error)
}

// UserRecord deliberately omits the password column.
type UserRecord struct {
	ID        uuid.UUID
	Name      string
	Username  string
	Email     string
	IsAdmin   bool
	CreatedAt time.Time
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListUsers(ctx context.Context) ([]UserRecord, error) {
	const query = `
		SELECT id, name, username, email, is_admin, created_at
		FROM users
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []UserRecord
	for rows.Next() {
		var u UserRecord
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *repository) CountUsers(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`

	var n int64
	err := r.db.QueryRowContext(ctx, query).Scan(&n)
	return n, err
}
