package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"betlytics/internal/model"
)

// CategoryRepository handles owner-scoped category labels.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository instance.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// ListByOwner returns the owner's categories ordered by name.
func (r *CategoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Category, error) {
	const query = `
		SELECT id, user_id, name, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// Create inserts a category for the owner. Names are unique per
// owner; a duplicate returns ErrCategoryExists.
func (r *CategoryRepository) Create(ctx context.Context, ownerID, name string) (*model.Category, error) {
	const query = `
		INSERT INTO categories (user_id, name)
		VALUES ($1, $2)
		RETURNING id, user_id, name, created_at
	`

	var c model.Category
	err := r.pool.QueryRow(ctx, query, ownerID, name).Scan(&c.ID, &c.OwnerID, &c.Name, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &c, nil
}

// Delete removes a category owned by ownerID. Bets referencing the
// deleted name keep it as a dangling label; there is no cascade.
// Deleting an absent category is not an error.
func (r *CategoryRepository) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	const query = `DELETE FROM categories WHERE id = $1 AND user_id = $2`

	if _, err := r.pool.Exec(ctx, query, id, ownerID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// Exists reports whether the owner has a category with the given name.
func (r *CategoryRepository) Exists(ctx context.Context, ownerID, name string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM categories WHERE user_id = $1 AND name = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, ownerID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return exists, nil
}
