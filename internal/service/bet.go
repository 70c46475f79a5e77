// Package service provides business logic implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"betlytics/internal/model"
	"betlytics/internal/profit"
)

// Field length bounds, matching the schema's column widths.
const (
	maxEventLen    = 255
	maxMarketLen   = 255
	maxCategoryLen = 100
)

var minOdds = decimal.NewFromInt(1)

// BetStore is the persistence surface the bet service depends on.
type BetStore interface {
	ListByOwner(ctx context.Context, ownerID string) ([]model.Bet, error)
	Create(ctx context.Context, in model.NewBet) (*model.Bet, error)
	Update(ctx context.Context, ownerID string, id uuid.UUID, u model.BetUpdate) (*model.Bet, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}

// CategoryStore is the persistence surface for owner category labels.
type CategoryStore interface {
	ListByOwner(ctx context.Context, ownerID string) ([]model.Category, error)
	Create(ctx context.Context, ownerID, name string) (*model.Category, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
	Exists(ctx context.Context, ownerID, name string) (bool, error)
}

// BetService handles bet creation, edits and deletion. It owns the
// profit invariant: a stored profit always equals the calculator's
// output for the bet's current stake, odds and outcome.
type BetService struct {
	bets       BetStore
	categories CategoryStore
}

// NewBetService creates a new BetService instance.
func NewBetService(bets BetStore, categories CategoryStore) *BetService {
	return &BetService{bets: bets, categories: categories}
}

// List returns all of the owner's bets, unordered.
func (s *BetService) List(ctx context.Context, ownerID string) ([]model.Bet, error) {
	bets, err := s.bets.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bets: %w", err)
	}
	return bets, nil
}

// Create validates the input, derives the profit and inserts the bet.
// A zero CreatedAt defaults to the current time; the creation form
// lets users back-date bets recorded after the fact.
func (s *BetService) Create(ctx context.Context, in model.NewBet) (*model.Bet, error) {
	if err := s.validateFields(ctx, in.OwnerID, in.Event, in.Market, in.Category, in.Stake, in.Odds, in.Unit, in.Outcome); err != nil {
		return nil, err
	}

	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	in.Profit = profit.Compute(in.Stake, in.Odds, in.Outcome)

	bet, err := s.bets.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to create bet: %w", err)
	}
	return bet, nil
}

// Update validates the edit, recomputes the profit and rewrites the
// bet. The repository reports repository.ErrBetNotFound when the bet
// does not exist or belongs to another owner.
func (s *BetService) Update(ctx context.Context, ownerID string, id uuid.UUID, u model.BetUpdate) (*model.Bet, error) {
	if err := s.validateFields(ctx, ownerID, u.Event, u.Market, u.Category, u.Stake, u.Odds, u.Unit, u.Outcome); err != nil {
		return nil, err
	}

	if u.CreatedAt.IsZero() {
		return nil, model.Invalid("createdAt", "must be set")
	}
	u.Profit = profit.Compute(u.Stake, u.Odds, u.Outcome)

	bet, err := s.bets.Update(ctx, ownerID, id, u)
	if err != nil {
		return nil, err
	}
	return bet, nil
}

// Delete removes a bet. A second delete of the same id succeeds, so
// double-submission from the UI does not surface an error.
func (s *BetService) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	return s.bets.Delete(ctx, ownerID, id)
}

// validateFields applies the write-time rules shared by create and
// update. Validation also happens client-side; this is the backstop.
func (s *BetService) validateFields(
	ctx context.Context,
	ownerID, event, market, category string,
	stake, odds decimal.Decimal,
	unit decimal.NullDecimal,
	outcome model.Outcome,
) error {
	switch {
	case strings.TrimSpace(event) == "":
		return model.Invalid("event", "must not be empty")
	case len(event) > maxEventLen:
		return model.Invalid("event", "too long")
	case strings.TrimSpace(market) == "":
		return model.Invalid("market", "must not be empty")
	case len(market) > maxMarketLen:
		return model.Invalid("market", "too long")
	case strings.TrimSpace(category) == "":
		return model.Invalid("category", "must not be empty")
	case len(category) > maxCategoryLen:
		return model.Invalid("category", "too long")
	case !stake.IsPositive():
		return model.Invalid("stake", "must be greater than 0")
	case odds.Cmp(minOdds) <= 0:
		return model.Invalid("odds", "must be greater than 1")
	case unit.Valid && !unit.Decimal.IsPositive():
		return model.Invalid("unit", "must be greater than 0")
	case !outcome.Valid():
		return model.Invalid("outcome", "unknown outcome")
	}

	// The category must be one of the owner's labels. Bets keep a
	// dangling label if the category is deleted later, so this only
	// binds at write time.
	exists, err := s.categories.Exists(ctx, ownerID, category)
	if err != nil {
		return fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return model.Invalid("category", "unknown category")
	}

	return nil
}
