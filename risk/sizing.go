// Package risk implements risk-based position sizing and the static
// risk-management rule library.
package risk

import (
	"math"

	"github.com/rustyeddy/axon/market"
)

// Size is the outcome of a sizing computation. Both fields are rounded
// to 2 decimal places.
type Size struct {
	LotSize    float64 `json:"lotSize"`
	DollarRisk float64 `json:"dollarRisk"`
}

// ComputeSize maps an account balance, a risk percentage and a stop-loss
// distance in pips to a standard-lot position size and the dollar amount
// at risk.
//
// Unknown symbols and non-positive stop distances return the zero Size;
// that is a defined result, not a failure. Negative balance or risk
// percent flow through the arithmetic unchanged. Rounding is half away
// from zero.
func ComputeSize(balance, riskPercent, stopLossPips float64, symbol string) Size {
	inst, ok := market.Find(symbol)
	if !ok || stopLossPips <= 0 {
		return Size{}
	}

	dollarRisk := balance * riskPercent / 100
	lotSize := dollarRisk / (stopLossPips * inst.PipValue)

	return Size{
		LotSize:    round2(lotSize),
		DollarRisk: round2(dollarRisk),
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
