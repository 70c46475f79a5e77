// Package repository provides data access layer implementations.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"betlytics/internal/model"
)

// Common errors for repository operations.
var (
	ErrBetNotFound    = errors.New("bet not found")
	ErrCategoryExists = errors.New("category already exists")
)

const betColumns = "id, user_id, event, market, category, stake, odds, unit, outcome, profit, created_at"

// BetRepository handles bet row persistence. Every query is scoped to
// an owner; a bet is never visible to or mutable by anyone else.
type BetRepository struct {
	pool *pgxpool.Pool
}

// NewBetRepository creates a new BetRepository instance.
func NewBetRepository(pool *pgxpool.Pool) *BetRepository {
	return &BetRepository{pool: pool}
}

func scanBet(row pgx.Row) (*model.Bet, error) {
	var b model.Bet
	err := row.Scan(
		&b.ID,
		&b.OwnerID,
		&b.Event,
		&b.Market,
		&b.Category,
		&b.Stake,
		&b.Odds,
		&b.Unit,
		&b.Outcome,
		&b.Profit,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListByOwner returns all bets for the given owner, unordered.
// Ordering and filtering are the caller's responsibility.
func (r *BetRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Bet, error) {
	const query = `
		SELECT ` + betColumns + `
		FROM bets
		WHERE user_id = $1
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bets: %w", err)
	}
	defer rows.Close()

	var bets []model.Bet
	for rows.Next() {
		b, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bets: %w", err)
	}

	return bets, nil
}

// Create inserts a bet row and returns the stored bet.
func (r *BetRepository) Create(ctx context.Context, in model.NewBet) (*model.Bet, error) {
	const query = `
		INSERT INTO bets (user_id, event, market, category, stake, odds, unit, outcome, profit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + betColumns

	bet, err := scanBet(r.pool.QueryRow(ctx, query,
		in.OwnerID,
		in.Event,
		in.Market,
		in.Category,
		in.Stake,
		in.Odds,
		in.Unit,
		in.Outcome,
		in.Profit,
		in.CreatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create bet: %w", err)
	}

	return bet, nil
}

// Update rewrites the mutable fields of a bet owned by ownerID.
// Returns ErrBetNotFound if no such bet belongs to the owner.
func (r *BetRepository) Update(ctx context.Context, ownerID string, id uuid.UUID, u model.BetUpdate) (*model.Bet, error) {
	const query = `
		UPDATE bets
		SET event = $3, market = $4, category = $5, stake = $6, odds = $7,
		    unit = $8, outcome = $9, profit = $10, created_at = $11
		WHERE id = $1 AND user_id = $2
		RETURNING ` + betColumns

	bet, err := scanBet(r.pool.QueryRow(ctx, query,
		id,
		ownerID,
		u.Event,
		u.Market,
		u.Category,
		u.Stake,
		u.Odds,
		u.Unit,
		u.Outcome,
		u.Profit,
		u.CreatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBetNotFound
		}
		return nil, fmt.Errorf("failed to update bet: %w", err)
	}

	return bet, nil
}

// Delete removes a bet owned by ownerID. Deleting a row that is
// already absent is not an error, so a double-submitted delete from
// the UI stays harmless.
func (r *BetRepository) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	const query = `DELETE FROM bets WHERE id = $1 AND user_id = $2`

	if _, err := r.pool.Exec(ctx, query, id, ownerID); err != nil {
		return fmt.Errorf("failed to delete bet: %w", err)
	}
	return nil
}
