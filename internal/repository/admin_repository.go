package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
)

// ErrAdminNotFound is returned when no admin matches the lookup.
var ErrAdminNotFound = errors.New("repository: admin not found")

// AdminRepository manages console administrator accounts.
type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// GetByEmail fetches an admin account for login.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, permissions, created_at, updated_at
		 FROM admins WHERE email = $1`, email).
		Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Permissions, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetByID fetches an admin account by id.
func (r *AdminRepository) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, permissions, created_at, updated_at
		 FROM admins WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Permissions, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new admin account and returns its id.
func (r *AdminRepository) Create(ctx context.Context, name, email, passwordHash string, permissions []string) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx,
		`INSERT INTO admins (name, email, password_hash, permissions, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, NOW(), NOW()) RETURNING id`,
		name, email, passwordHash, permissions).Scan(&id)
	return id, err
}
