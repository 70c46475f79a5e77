// Package profit tests for the bet profit calculator.
package profit

import (
	"testing"

	"github.com/shopspring/decimal"

	"betlytics/internal/model"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		stake   string
		odds    string
		outcome model.Outcome
		want    string
		null    bool
	}{
		{"won typical", "10.00", "1.85", model.OutcomeWon, "8.50", false},
		{"won even money", "10", "2.0", model.OutcomeWon, "10", false},
		{"won long odds", "2.50", "11.00", model.OutcomeWon, "25.00", false},
		{"lost", "20.00", "1.50", model.OutcomeLost, "-20.00", false},
		{"lost ignores odds", "5", "100", model.OutcomeLost, "-5", false},
		{"voided", "15.00", "2.10", model.OutcomeVoided, "0", false},
		{"pending has no profit", "10.00", "1.85", model.OutcomePending, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stake := decimal.RequireFromString(tt.stake)
			odds := decimal.RequireFromString(tt.odds)

			got := Compute(stake, odds, tt.outcome)
			if tt.null {
				if got.Valid {
					t.Fatalf("Compute(%s, %s, %s) = %s, want null", tt.stake, tt.odds, tt.outcome, got.Decimal)
				}
				return
			}
			if !got.Valid {
				t.Fatalf("Compute(%s, %s, %s) = null, want %s", tt.stake, tt.odds, tt.outcome, tt.want)
			}
			want := decimal.RequireFromString(tt.want)
			if !got.Decimal.Equal(want) {
				t.Errorf("Compute(%s, %s, %s) = %s, want %s", tt.stake, tt.odds, tt.outcome, got.Decimal, want)
			}
		})
	}
}

// TestComputeExactness checks that the result carries no floating-point
// drift: 10.00 at odds 1.85 must be exactly 8.50, not 8.4999...
func TestComputeExactness(t *testing.T) {
	got := Compute(decimal.RequireFromString("10.00"), decimal.RequireFromString("1.85"), model.OutcomeWon)
	if got.Decimal.String() != "8.5" {
		t.Errorf("profit = %q, want %q", got.Decimal.String(), "8.5")
	}
}
