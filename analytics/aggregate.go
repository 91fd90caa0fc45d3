// Package analytics computes derived performance metrics over a trade
// collection. Every function is a pure reducer: it recomputes from
// scratch on each call and never mutates its input.
package analytics

import (
	"sort"
	"time"

	"github.com/rustyeddy/axon/ledger"
)

// TotalPL is the signed sum of all trade results.
func TotalPL(trades []ledger.Trade) float64 {
	var sum float64
	for _, t := range trades {
		sum += t.Result
	}
	return sum
}

// WinRate is the percentage of trades with a strictly positive result.
// An empty collection rates 0, never a division by zero. Zero-result
// trades count as non-winning.
func WinRate(trades []ledger.Trade) float64 {
	if len(trades) == 0 {
		return 0
	}
	wins, _ := WinLossSplit(trades)
	return float64(wins) / float64(len(trades)) * 100
}

// WinLossSplit counts winning trades (result > 0) and the remainder.
func WinLossSplit(trades []ledger.Trade) (wins, losses int) {
	for _, t := range trades {
		if t.Result > 0 {
			wins++
		} else {
			losses++
		}
	}
	return wins, losses
}

// DailyPL sums the results of trades on the same calendar day as day.
// Calendar-day equality is evaluated in day's time zone, so one
// consistent zone governs a whole aggregation pass. A day with no
// trades sums to exactly 0.
func DailyPL(trades []ledger.Trade, day time.Time) float64 {
	return PeriodPL(trades, func(d time.Time) bool {
		return SameDay(d, day)
	})
}

// PeriodPL sums the results of trades whose date satisfies the
// predicate. DailyPL, WeeklyPL and MonthlyPL are specializations.
func PeriodPL(trades []ledger.Trade, match func(time.Time) bool) float64 {
	var sum float64
	for _, t := range trades {
		if match(t.Date) {
			sum += t.Result
		}
	}
	return sum
}

// WeeklyPL sums results for trades in the same week as ref.
func WeeklyPL(trades []ledger.Trade, ref time.Time) float64 {
	return PeriodPL(trades, func(d time.Time) bool {
		return SameWeek(d, ref)
	})
}

// MonthlyPL sums results for trades in the same month as ref.
func MonthlyPL(trades []ledger.Trade, ref time.Time) float64 {
	return PeriodPL(trades, func(d time.Time) bool {
		return SameMonth(d, ref)
	})
}

// SameDay reports whether a falls on the same calendar day as ref,
// evaluated in ref's location.
func SameDay(a, ref time.Time) bool {
	a = a.In(ref.Location())
	return a.Year() == ref.Year() && a.YearDay() == ref.YearDay()
}

// SameWeek reports whether a falls in the same week as ref. Weeks start
// on Sunday, matching the calendar view.
func SameWeek(a, ref time.Time) bool {
	return startOfWeek(a.In(ref.Location())).Equal(startOfWeek(ref))
}

// SameMonth reports whether a falls in the same month as ref.
func SameMonth(a, ref time.Time) bool {
	a = a.In(ref.Location())
	return a.Year() == ref.Year() && a.Month() == ref.Month()
}

func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// SortedByDateDescending returns a copy ordered newest first. Equal
// dates break ties by ascending id, which for ULID-keyed trades means
// creation order; the sort is deterministic either way.
func SortedByDateDescending(trades []ledger.Trade) []ledger.Trade {
	out := make([]ledger.Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Summary bundles the headline figures the analytics view shows.
type Summary struct {
	TotalTrades   int     `json:"totalTrades"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinRate       float64 `json:"winRate"`
	NetPL         float64 `json:"netPL"`
	WeeklyTrades  int     `json:"weeklyTrades"`
	WeeklyPL      float64 `json:"weeklyPL"`
	WeeklyWinRate float64 `json:"weeklyWinRate"`
}

// Summarize computes the headline figures, with weekly numbers relative
// to now.
func Summarize(trades []ledger.Trade, now time.Time) Summary {
	wins, losses := WinLossSplit(trades)

	var weekly []ledger.Trade
	for _, t := range trades {
		if SameWeek(t.Date, now) {
			weekly = append(weekly, t)
		}
	}

	return Summary{
		TotalTrades:   len(trades),
		Wins:          wins,
		Losses:        losses,
		WinRate:       WinRate(trades),
		NetPL:         TotalPL(trades),
		WeeklyTrades:  len(weekly),
		WeeklyPL:      TotalPL(weekly),
		WeeklyWinRate: WinRate(weekly),
	}
}
