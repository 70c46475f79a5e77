// Package stats tests for the aggregation functions.
package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betlytics/internal/model"
	"betlytics/internal/profit"
)

func mkBet(stake, odds string, outcome model.Outcome, at time.Time) model.Bet {
	s := decimal.RequireFromString(stake)
	o := decimal.RequireFromString(odds)
	return model.Bet{
		OwnerID:   "owner-1",
		Event:     "Team A vs Team B",
		Market:    "Match winner",
		Category:  "Football",
		Stake:     s,
		Odds:      o,
		Outcome:   outcome,
		Profit:    profit.Compute(s, o, outcome),
		CreatedAt: at,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.TotalCount)
	assert.True(t, s.TotalStaked.IsZero())
	assert.True(t, s.TotalProfit.IsZero())
	assert.True(t, s.TotalUnits.IsZero())
	assert.Equal(t, float64(0), s.WinPercentage)
	assert.True(t, s.AvgOddsAll.IsZero())
	assert.True(t, s.AvgOddsWins.IsZero())
	assert.True(t, s.AvgOddsLosses.IsZero())
}

// TestSummarizeScenario runs the three-bet dashboard scenario:
// a 10 @ 2.0 win, a 5 @ 3.0 loss and an 8 @ 1.5 pending bet.
func TestSummarizeScenario(t *testing.T) {
	bets := []model.Bet{
		mkBet("10", "2.0", model.OutcomeWon, day(2025, time.March, 1)),
		mkBet("5", "3.0", model.OutcomeLost, day(2025, time.March, 2)),
		mkBet("8", "1.5", model.OutcomePending, day(2025, time.March, 3)),
	}

	s := Summarize(bets)

	assert.Equal(t, 3, s.TotalCount)
	assert.Equal(t, "23", s.TotalStaked.String())
	assert.Equal(t, "5", s.TotalProfit.String())
	assert.Equal(t, float64(50), s.WinPercentage)
	assert.Equal(t, "2.5", s.AvgOddsAll.String())
	assert.Equal(t, "2", s.AvgOddsWins.String())
	assert.Equal(t, "3", s.AvgOddsLosses.String())
}

func TestSummarizeWinPercentage(t *testing.T) {
	won := func(d int) model.Bet { return mkBet("10", "2.0", model.OutcomeWon, day(2025, time.May, d)) }
	lost := func(d int) model.Bet { return mkBet("10", "2.0", model.OutcomeLost, day(2025, time.May, d)) }
	pending := func(d int) model.Bet { return mkBet("10", "2.0", model.OutcomePending, day(2025, time.May, d)) }
	voided := func(d int) model.Bet { return mkBet("10", "2.0", model.OutcomeVoided, day(2025, time.May, d)) }

	tests := []struct {
		name string
		bets []model.Bet
		want float64
	}{
		{"no bets", nil, 0},
		{"one win one loss", []model.Bet{won(1), lost(2)}, 50},
		{"two wins one loss", []model.Bet{won(1), won(2), lost(3)}, 100.0 * 2 / 3},
		{"pending excluded from denominator", []model.Bet{won(1), pending(2), pending(3)}, 100},
		{"voided excluded from denominator", []model.Bet{won(1), voided(2)}, 100},
		{"only pending", []model.Bet{pending(1), pending(2)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Summarize(tt.bets).WinPercentage, 1e-9)
		})
	}
}

func TestSummarizeUnits(t *testing.T) {
	unit := func(v string) decimal.NullDecimal {
		return decimal.NewNullDecimal(decimal.RequireFromString(v))
	}

	w := mkBet("10", "2.0", model.OutcomeWon, day(2025, time.June, 1))
	w.Unit = unit("1.5")
	l := mkBet("10", "2.0", model.OutcomeLost, day(2025, time.June, 2))
	l.Unit = unit("2")
	p := mkBet("10", "2.0", model.OutcomePending, day(2025, time.June, 3))
	p.Unit = unit("3")
	noUnit := mkBet("10", "2.0", model.OutcomeWon, day(2025, time.June, 4))

	s := Summarize([]model.Bet{w, l, p, noUnit})
	assert.Equal(t, "-0.5", s.TotalUnits.String())
}

func TestDailyProfitSortedAcrossYearBoundary(t *testing.T) {
	// Deliberately out of chronological order, spanning new year.
	bets := []model.Bet{
		mkBet("10", "2.0", model.OutcomeWon, day(2026, time.January, 2)),
		mkBet("10", "2.0", model.OutcomeLost, day(2025, time.December, 31)),
		mkBet("5", "3.0", model.OutcomeWon, day(2026, time.January, 2)),
	}

	got := DailyProfit(bets, time.UTC)
	require.Len(t, got, 2)

	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), got[0].Day)
	assert.Equal(t, time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC), got[1].Day)
	assert.Equal(t, "-10", got[0].Profit.String())
	assert.Equal(t, "20", got[1].Profit.String())
}

func TestDailyProfitPendingOpensZeroBucket(t *testing.T) {
	bets := []model.Bet{
		mkBet("10", "2.0", model.OutcomePending, day(2025, time.April, 10)),
	}

	got := DailyProfit(bets, time.UTC)
	require.Len(t, got, 1)
	assert.True(t, got[0].Profit.IsZero())
}

func TestDailyProfitTimezoneBuckets(t *testing.T) {
	// 23:30 UTC on March 1 is already March 2 in UTC+3.
	loc := time.FixedZone("UTC+3", 3*60*60)
	bets := []model.Bet{
		mkBet("10", "2.0", model.OutcomeWon, time.Date(2025, time.March, 1, 23, 30, 0, 0, time.UTC)),
	}

	got := DailyProfit(bets, loc)
	require.Len(t, got, 1)
	assert.Equal(t, time.Date(2025, time.March, 2, 0, 0, 0, 0, loc), got[0].Day)
}

func TestGroupByCategory(t *testing.T) {
	a := mkBet("10", "2.0", model.OutcomeWon, day(2025, time.May, 1))
	b := mkBet("10", "2.0", model.OutcomeLost, day(2025, time.May, 2))
	b.Category = "eSports"
	c := mkBet("5", "1.5", model.OutcomeWon, day(2025, time.May, 3))

	groups := GroupByCategory([]model.Bet{a, b, c})
	require.Len(t, groups, 2)
	require.Len(t, groups["Football"], 2)
	require.Len(t, groups["eSports"], 1)

	// Encounter order preserved within a group.
	assert.Equal(t, a.CreatedAt, groups["Football"][0].CreatedAt)
	assert.Equal(t, c.CreatedAt, groups["Football"][1].CreatedAt)
}

func TestYearsAndMonths(t *testing.T) {
	bets := []model.Bet{
		mkBet("10", "2.0", model.OutcomeWon, day(2024, time.November, 5)),
		mkBet("10", "2.0", model.OutcomeLost, day(2025, time.January, 5)),
		mkBet("10", "2.0", model.OutcomeWon, day(2025, time.March, 5)),
		mkBet("10", "2.0", model.OutcomeWon, day(2025, time.March, 20)),
	}

	assert.Equal(t, []int{2025, 2024}, Years(bets, time.UTC))

	y := 2025
	assert.Equal(t, []int{0, 2}, Months(bets, &y, time.UTC))
	assert.Equal(t, []int{0, 2, 10}, Months(bets, nil, time.UTC))
}

func TestFilterApply(t *testing.T) {
	a := mkBet("10", "2.0", model.OutcomeWon, day(2024, time.December, 31))
	b := mkBet("10", "2.0", model.OutcomeLost, day(2025, time.January, 2))
	b.Category = "eSports"
	b.Event = "Alpha vs Omega"
	c := mkBet("10", "2.0", model.OutcomeWon, day(2025, time.February, 10))
	bets := []model.Bet{a, b, c}

	year := 2025
	assert.Len(t, Filter{Year: &year}.Apply(bets, time.UTC), 2)

	month := 0 // January
	got := Filter{Year: &year, Month: &month}.Apply(bets, time.UTC)
	require.Len(t, got, 1)
	assert.Equal(t, "eSports", got[0].Category)

	assert.Len(t, Filter{Category: "Football"}.Apply(bets, time.UTC), 2)

	// Event match is a case-insensitive substring.
	got = Filter{Event: "omega"}.Apply(bets, time.UTC)
	require.Len(t, got, 1)
	assert.Equal(t, "Alpha vs Omega", got[0].Event)

	// Zero filter returns the input unchanged.
	assert.Len(t, Filter{}.Apply(bets, time.UTC), 3)
}
