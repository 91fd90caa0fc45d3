package analytics

import "github.com/rustyeddy/axon/ledger"

// EquityPoint is one step of the cumulative balance series.
type EquityPoint struct {
	Index  int     `json:"index"`
	Equity float64 `json:"equity"`
}

// EquityCurve produces the cumulative balance series, one point per
// trade in original list order, starting from startingBalance. An empty
// collection yields a single point at the starting balance.
//
// The curve deliberately follows insertion order, not date order: it
// tracks the balance as trades were logged, matching the journal's
// historical behaviour. Use SortedByDateDescending first if a
// chronological curve is wanted.
func EquityCurve(trades []ledger.Trade, startingBalance float64) []EquityPoint {
	if len(trades) == 0 {
		return []EquityPoint{{Index: 0, Equity: startingBalance}}
	}

	points := make([]EquityPoint, len(trades))
	balance := startingBalance
	for i, t := range trades {
		balance += t.Result
		points[i] = EquityPoint{Index: i, Equity: balance}
	}
	return points
}
