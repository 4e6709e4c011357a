package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

//go:generate mockgen -source=auth_repo.go -destination=../mock/auth/auth_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, params CreateUserParams) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
}

type User struct {
	ID        uuid.UUID
	Name      string
	Username  string
	Email     string
	Password  string
	IsAdmin   bool
	CreatedAt time.Time
}

type CreateUserParams struct {
	Name     string
	Username string
	Email    string
	Password string
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// IsUniqueViolation reports a Postgres unique-constraint failure.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

func (r *repository) Create(ctx context.Context, params CreateUserParams) (User, error) {
	const query = `
		INSERT INTO users (name, username, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, username, email, password, is_admin, created_at
	`

	var out User
	err := r.db.QueryRowContext(ctx, query, params.Name, params.Username, params.Email, params.Password).Scan(
		&out.ID,
		&out.Name,
		&out.Username,
		&out.Email,
		&out.Password,
		&out.IsAdmin,
		&out.CreatedAt,
	)
	return out, err
}

func (r *repository) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
		SELECT id, name, username, email, password, is_admin, created_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var out User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&out.ID,
		&out.Name,
		&out.Username,
		&out.Email,
		&out.Password,
		&out.IsAdmin,
		&out.CreatedAt,
	)
	return out, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	const query = `
		SELECT id, name, username, email, password, is_admin, created_at
		FROM users
		WHERE id = $1
		LIMIT 1
	`

	var out User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&out.ID,
		&out.Name,
		&out.Username,
		&out.Email,
		&out.Password,
		&out.IsAdmin,
		&out.CreatedAt,
	)
	return out, err
}
