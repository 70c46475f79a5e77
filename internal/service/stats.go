package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"betlytics/internal/model"
	"betlytics/internal/stats"
)

// StatsService fetches an owner's bets and runs the aggregation
// functions over them. Statistics are recomputed from the full row
// set on every call; there is no cached or incremental state.
type StatsService struct {
	bets     BetStore
	timezone *time.Location
}

// NewStatsService creates a new StatsService instance. The timezone
// governs calendar-day bucketing and the year/month filters.
func NewStatsService(bets BetStore, timezone *time.Location) *StatsService {
	if timezone == nil {
		timezone = time.UTC
	}
	return &StatsService{bets: bets, timezone: timezone}
}

// Dashboard is the full statistics payload for one dashboard load.
type Dashboard struct {
	Summary stats.Summary     `json:"summary"`
	Daily   []stats.DayProfit `json:"daily"`
}

// CategoryDashboard is one category's slice of the dashboard.
type CategoryDashboard struct {
	Category string `json:"category"`
	Dashboard
}

// FilterOptions lists the years and months an owner can filter by,
// derived from the creation dates of their bets.
type FilterOptions struct {
	Years  []int `json:"years"`
	Months []int `json:"months"`
}

func (s *StatsService) fetch(ctx context.Context, ownerID string, f stats.Filter) ([]model.Bet, error) {
	bets, err := s.bets.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bets for stats: %w", err)
	}
	return f.Apply(bets, s.timezone), nil
}

// Summary computes the aggregated summary for the filtered bets.
func (s *StatsService) Summary(ctx context.Context, ownerID string, f stats.Filter) (*stats.Summary, error) {
	bets, err := s.fetch(ctx, ownerID, f)
	if err != nil {
		return nil, err
	}
	summary := stats.Summarize(bets)
	return &summary, nil
}

// Daily computes the daily profit series for the filtered bets.
func (s *StatsService) Daily(ctx context.Context, ownerID string, f stats.Filter) ([]stats.DayProfit, error) {
	bets, err := s.fetch(ctx, ownerID, f)
	if err != nil {
		return nil, err
	}
	return stats.DailyProfit(bets, s.timezone), nil
}

// Overview computes the summary and daily series in one pass, the
// shape a dashboard load consumes.
func (s *StatsService) Overview(ctx context.Context, ownerID string, f stats.Filter) (*Dashboard, error) {
	bets, err := s.fetch(ctx, ownerID, f)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Summary: stats.Summarize(bets),
		Daily:   stats.DailyProfit(bets, s.timezone),
	}, nil
}

// ByCategory computes a dashboard per category. Output is sorted by
// category name so the page renders in a stable order.
func (s *StatsService) ByCategory(ctx context.Context, ownerID string, f stats.Filter) ([]CategoryDashboard, error) {
	bets, err := s.fetch(ctx, ownerID, f)
	if err != nil {
		return nil, err
	}

	groups := stats.GroupByCategory(bets)
	out := make([]CategoryDashboard, 0, len(groups))
	for category, group := range groups {
		out = append(out, CategoryDashboard{
			Category: category,
			Dashboard: Dashboard{
				Summary: stats.Summarize(group),
				Daily:   stats.DailyProfit(group, s.timezone),
			},
		})
	}
	sortCategoryDashboards(out)
	return out, nil
}

// Filters reports the years present across the owner's bets and the
// months present within the optionally selected year.
func (s *StatsService) Filters(ctx context.Context, ownerID string, year *int) (*FilterOptions, error) {
	bets, err := s.bets.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bets for filters: %w", err)
	}
	return &FilterOptions{
		Years:  stats.Years(bets, s.timezone),
		Months: stats.Months(bets, year, s.timezone),
	}, nil
}

func sortCategoryDashboards(ds []CategoryDashboard) {
	sort.Slice(ds, func(i, j int) bool { return ds[i].Category < ds[j].Category })
}
