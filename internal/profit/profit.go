// Package profit computes the signed profit of a single bet from its
// stake, decimal odds and outcome.
package profit

import (
	"github.com/shopspring/decimal"

	"betlytics/internal/model"
)

var one = decimal.NewFromInt(1)

// Compute returns the profit for a bet.
// Rules:
//   - Won:    stake * (odds - 1)
//   - Lost:   -stake
//   - Voided: 0
//   - Pending: null (no profit until the bet settles)
//
// No rounding is performed here; callers round for display only.
func Compute(stake, odds decimal.Decimal, outcome model.Outcome) decimal.NullDecimal {
	switch outcome {
	case model.OutcomeWon:
		return decimal.NewNullDecimal(stake.Mul(odds.Sub(one)))
	case model.OutcomeLost:
		return decimal.NewNullDecimal(stake.Neg())
	case model.OutcomeVoided:
		return decimal.NewNullDecimal(decimal.Zero)
	default:
		return decimal.NullDecimal{}
	}
}
