// Package stats derives dashboard statistics from a list of bets.
//
// Every function here is pure: statistics are recomputed from scratch
// over the rows the caller just fetched, which is fine at the scale of
// a personal bet history. Nothing in this package mutates its input.
package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"betlytics/internal/model"
)

// Filter narrows a bet list before aggregation. Zero values mean
// "no restriction". Month is 0-indexed (January = 0) to match the
// dashboard's filter controls.
type Filter struct {
	Year     *int
	Month    *int
	Category string
	Event    string
}

// Apply returns the bets matching the filter, preserving order.
// Year and month are evaluated in loc, the owner's timezone.
func (f Filter) Apply(bets []model.Bet, loc *time.Location) []model.Bet {
	if f.Year == nil && f.Month == nil && f.Category == "" && f.Event == "" {
		return bets
	}

	needle := strings.ToLower(f.Event)
	out := make([]model.Bet, 0, len(bets))
	for _, b := range bets {
		at := b.CreatedAt.In(loc)
		if f.Year != nil && at.Year() != *f.Year {
			continue
		}
		if f.Month != nil && int(at.Month())-1 != *f.Month {
			continue
		}
		if f.Category != "" && b.Category != f.Category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(b.Event), needle) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Summary is the aggregated view of a bet list. Monetary totals are
// rounded to two decimal places here, at the display boundary.
type Summary struct {
	TotalCount    int             `json:"totalCount"`
	TotalStaked   decimal.Decimal `json:"totalStaked"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	TotalUnits    decimal.Decimal `json:"totalUnits"`
	WinPercentage float64         `json:"winPercentage"`
	AvgOddsAll    decimal.Decimal `json:"avgOddsAll"`
	AvgOddsWins   decimal.Decimal `json:"avgOddsWins"`
	AvgOddsLosses decimal.Decimal `json:"avgOddsLosses"`
}

// Summarize computes the dashboard summary for a list of bets.
//
// The win percentage denominator is decided bets only (won or lost);
// pending and voided bets have no known outcome and saying a bettor
// with 1 win and 9 pending bets has a 10% win rate would be wrong.
// Empty inputs yield zeros throughout, never NaN.
func Summarize(bets []model.Bet) Summary {
	var (
		staked    decimal.Decimal
		netProfit decimal.Decimal
		units     decimal.Decimal
		oddsAll   decimal.Decimal
		oddsWins  decimal.Decimal
		oddsLoss  decimal.Decimal
		wins      int
		losses    int
	)

	for _, b := range bets {
		staked = staked.Add(b.Stake)
		if b.Profit.Valid {
			netProfit = netProfit.Add(b.Profit.Decimal)
		}
		switch b.Outcome {
		case model.OutcomeWon:
			wins++
			oddsAll = oddsAll.Add(b.Odds)
			oddsWins = oddsWins.Add(b.Odds)
			if b.Unit.Valid {
				units = units.Add(b.Unit.Decimal)
			}
		case model.OutcomeLost:
			losses++
			oddsAll = oddsAll.Add(b.Odds)
			oddsLoss = oddsLoss.Add(b.Odds)
			if b.Unit.Valid {
				units = units.Sub(b.Unit.Decimal)
			}
		}
	}

	decided := wins + losses

	s := Summary{
		TotalCount:    len(bets),
		TotalStaked:   staked.Round(2),
		TotalProfit:   netProfit.Round(2),
		TotalUnits:    units.Round(2),
		AvgOddsAll:    mean(oddsAll, decided),
		AvgOddsWins:   mean(oddsWins, wins),
		AvgOddsLosses: mean(oddsLoss, losses),
	}
	if decided > 0 {
		s.WinPercentage = float64(wins) / float64(decided) * 100
	}
	return s
}

// mean returns sum/n rounded to two places, or zero when n is 0.
func mean(sum decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(n))).Round(2)
}

// DayProfit is one bar of the daily profit chart.
type DayProfit struct {
	Day    time.Time       `json:"day"`
	Profit decimal.Decimal `json:"profit"`
}

// DailyProfit buckets profit by calendar day in loc and returns the
// buckets sorted ascending by date. Sorting uses the real dates, not
// formatted labels: a day/month string would order Jan 2 before
// Dec 31 across a year boundary. Bets without a settled profit
// contribute zero but still open their day's bucket.
func DailyProfit(bets []model.Bet, loc *time.Location) []DayProfit {
	byDay := make(map[time.Time]decimal.Decimal, len(bets))
	for _, b := range bets {
		at := b.CreatedAt.In(loc)
		day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, loc)
		if b.Profit.Valid {
			byDay[day] = byDay[day].Add(b.Profit.Decimal)
		} else if _, ok := byDay[day]; !ok {
			byDay[day] = decimal.Zero
		}
	}

	out := make([]DayProfit, 0, len(byDay))
	for day, p := range byDay {
		out = append(out, DayProfit{Day: day, Profit: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}

// GroupByCategory partitions bets by their category label, keeping
// encounter order within each group. Every bet lands in exactly one
// group; iteration order across groups is unspecified.
func GroupByCategory(bets []model.Bet) map[string][]model.Bet {
	groups := make(map[string][]model.Bet)
	for _, b := range bets {
		groups[b.Category] = append(groups[b.Category], b)
	}
	return groups
}

// Years returns the distinct years present in the bets' creation
// dates, newest first, for populating the dashboard's year filter.
func Years(bets []model.Bet, loc *time.Location) []int {
	seen := make(map[int]bool)
	for _, b := range bets {
		seen[b.CreatedAt.In(loc).Year()] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Months returns the distinct 0-indexed months present in the bets'
// creation dates, ascending. When year is non-nil only bets from that
// year are considered.
func Months(bets []model.Bet, year *int, loc *time.Location) []int {
	seen := make(map[int]bool)
	for _, b := range bets {
		at := b.CreatedAt.In(loc)
		if year != nil && at.Year() != *year {
			continue
		}
		seen[int(at.Month())-1] = true
	}
	months := make([]int, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Ints(months)
	return months
}
