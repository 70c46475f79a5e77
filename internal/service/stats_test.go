// Package service tests for the stats service.
package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betlytics/internal/model"
	"betlytics/internal/profit"
	"betlytics/internal/repository/memory"
	"betlytics/internal/stats"
)

func seedBet(t *testing.T, store *memory.BetStore, category, stake, odds string, outcome model.Outcome, at time.Time) {
	t.Helper()
	s := decimal.RequireFromString(stake)
	o := decimal.RequireFromString(odds)
	_, err := store.Create(context.Background(), model.NewBet{
		OwnerID:   owner,
		Event:     "Team A vs Team B",
		Market:    "Match winner",
		Category:  category,
		Stake:     s,
		Odds:      o,
		Outcome:   outcome,
		Profit:    profit.Compute(s, o, outcome),
		CreatedAt: at,
	})
	require.NoError(t, err)
}

func TestStatsServiceOverview(t *testing.T) {
	store := memory.NewBetStore()
	svc := NewStatsService(store, time.UTC)
	ctx := context.Background()

	seedBet(t, store, "Football", "10", "2.0", model.OutcomeWon, time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC))
	seedBet(t, store, "Football", "5", "3.0", model.OutcomeLost, time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC))
	seedBet(t, store, "eSports", "8", "1.5", model.OutcomePending, time.Date(2025, time.March, 2, 12, 0, 0, 0, time.UTC))

	d, err := svc.Overview(ctx, owner, stats.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 3, d.Summary.TotalCount)
	assert.Equal(t, "5", d.Summary.TotalProfit.String())
	assert.Equal(t, float64(50), d.Summary.WinPercentage)
	require.Len(t, d.Daily, 2)
	assert.Equal(t, "10", d.Daily[0].Profit.String())
	assert.Equal(t, "-5", d.Daily[1].Profit.String())
}

func TestStatsServiceByCategory(t *testing.T) {
	store := memory.NewBetStore()
	svc := NewStatsService(store, time.UTC)

	seedBet(t, store, "Football", "10", "2.0", model.OutcomeWon, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	seedBet(t, store, "eSports", "5", "3.0", model.OutcomeLost, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))

	ds, err := svc.ByCategory(context.Background(), owner, stats.Filter{})
	require.NoError(t, err)
	require.Len(t, ds, 2)

	// Sorted by category name ("F" sorts before lowercase "e").
	assert.Equal(t, "Football", ds[0].Category)
	assert.Equal(t, "eSports", ds[1].Category)
	assert.Equal(t, "10", ds[0].Summary.TotalProfit.String())
	assert.Equal(t, "-5", ds[1].Summary.TotalProfit.String())
}

func TestStatsServiceFilters(t *testing.T) {
	store := memory.NewBetStore()
	svc := NewStatsService(store, time.UTC)

	seedBet(t, store, "Football", "10", "2.0", model.OutcomeWon, time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC))
	seedBet(t, store, "Football", "10", "2.0", model.OutcomeLost, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	seedBet(t, store, "Football", "10", "2.0", model.OutcomeWon, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))

	year := 2025
	opts, err := svc.Filters(context.Background(), owner, &year)
	require.NoError(t, err)

	assert.Equal(t, []int{2025, 2024}, opts.Years)
	assert.Equal(t, []int{0, 2}, opts.Months)
}

func TestStatsServiceSummaryWithFilter(t *testing.T) {
	store := memory.NewBetStore()
	svc := NewStatsService(store, time.UTC)

	seedBet(t, store, "Football", "10", "2.0", model.OutcomeWon, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC))
	seedBet(t, store, "eSports", "5", "3.0", model.OutcomeLost, time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC))

	year := 2025
	summary, err := svc.Summary(context.Background(), owner, stats.Filter{Year: &year})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalCount)
	assert.Equal(t, "-5", summary.TotalProfit.String())
}

func TestStatsServiceEmptyOwner(t *testing.T) {
	svc := NewStatsService(memory.NewBetStore(), time.UTC)

	d, err := svc.Overview(context.Background(), "nobody", stats.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 0, d.Summary.TotalCount)
	assert.Equal(t, float64(0), d.Summary.WinPercentage)
	assert.Empty(t, d.Daily)
}
