// Package model defines the data models for the bet tracker.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Outcome is the settlement state of a bet.
type Outcome string

const (
	OutcomePending Outcome = "Pending"
	OutcomeWon     Outcome = "Won"
	OutcomeLost    Outcome = "Lost"
	OutcomeVoided  Outcome = "Voided"
)

// Valid reports whether o is one of the known outcome values.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomePending, OutcomeWon, OutcomeLost, OutcomeVoided:
		return true
	}
	return false
}

// Decided reports whether the bet has been settled as won or lost.
// Pending and voided bets carry no win/loss information and are
// excluded from win-rate and average-odds statistics.
func (o Outcome) Decided() bool {
	return o == OutcomeWon || o == OutcomeLost
}

// Bet represents a single recorded wager.
// Monetary fields use decimal values end to end; profit is derived
// from stake, odds and outcome and is null while the bet is pending.
type Bet struct {
	ID        uuid.UUID           `db:"id" json:"id"`
	OwnerID   string              `db:"user_id" json:"ownerId"`
	Event     string              `db:"event" json:"event"`
	Market    string              `db:"market" json:"market"`
	Category  string              `db:"category" json:"category"`
	Stake     decimal.Decimal     `db:"stake" json:"stake"`
	Odds      decimal.Decimal     `db:"odds" json:"odds"`
	Unit      decimal.NullDecimal `db:"unit" json:"unit"`
	Outcome   Outcome             `db:"outcome" json:"outcome"`
	Profit    decimal.NullDecimal `db:"profit" json:"profit"`
	CreatedAt time.Time           `db:"created_at" json:"createdAt"`
}

// NewBet carries the fields for creating a bet. Profit is derived by
// the service before the row is inserted, never accepted from callers.
type NewBet struct {
	OwnerID   string
	Event     string
	Market    string
	Category  string
	Stake     decimal.Decimal
	Odds      decimal.Decimal
	Unit      decimal.NullDecimal
	Outcome   Outcome
	Profit    decimal.NullDecimal
	CreatedAt time.Time
}

// BetUpdate carries the full mutable field set for an edit. The edit
// form always submits every field, so partial patches are not modeled.
type BetUpdate struct {
	Event     string
	Market    string
	Category  string
	Stake     decimal.Decimal
	Odds      decimal.Decimal
	Unit      decimal.NullDecimal
	Outcome   Outcome
	Profit    decimal.NullDecimal
	CreatedAt time.Time
}

// Category is an owner-scoped bet label. Names are unique per owner.
// Deleting a category does not touch bets referencing it; their
// category becomes a dangling label tolerated by the display layer.
type Category struct {
	ID        uuid.UUID `db:"id" json:"id"`
	OwnerID   string    `db:"user_id" json:"ownerId"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
