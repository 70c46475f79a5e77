package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"betlytics/internal/model"
)

// CategoryService handles owner category labels: create, list and
// delete. Categories have no update operation.
type CategoryService struct {
	categories CategoryStore
}

// NewCategoryService creates a new CategoryService instance.
func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns the owner's categories ordered by name.
func (s *CategoryService) List(ctx context.Context, ownerID string) ([]model.Category, error) {
	categories, err := s.categories.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Create adds a category label for the owner. Duplicate names return
// repository.ErrCategoryExists.
func (s *CategoryService) Create(ctx context.Context, ownerID, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.Invalid("name", "must not be empty")
	}
	if len(name) > maxCategoryLen {
		return nil, model.Invalid("name", "too long")
	}

	return s.categories.Create(ctx, ownerID, name)
}

// Delete removes a category. Bets referencing it keep the label.
func (s *CategoryService) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	return s.categories.Delete(ctx, ownerID, id)
}
