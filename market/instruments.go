// Package market holds the static instrument catalog used for position sizing.
package market

// InstrumentType classifies an instrument for display and sizing context.
type InstrumentType string

const (
	Forex     InstrumentType = "Forex"
	Commodity InstrumentType = "Commodity"
)

// Instrument is a tradable symbol with the currency value of one pip
// move for one standard lot. The catalog is fixed and read-only; the
// ledger accepts unknown symbols, they simply size to zero.
type Instrument struct {
	Symbol   string         `json:"symbol"`
	Type     InstrumentType `json:"type"`
	PipValue float64        `json:"pipValue"`
}

// Instruments is the built-in catalog, in display order.
var Instruments = []Instrument{
	{Symbol: "EURUSD", Type: Forex, PipValue: 10},
	{Symbol: "GBPUSD", Type: Forex, PipValue: 10},
	{Symbol: "USDJPY", Type: Forex, PipValue: 6.8},
	{Symbol: "AUDUSD", Type: Forex, PipValue: 10},
	{Symbol: "XAUUSD", Type: Commodity, PipValue: 100},
	{Symbol: "XAGUSD", Type: Commodity, PipValue: 50},
	{Symbol: "USOIL", Type: Commodity, PipValue: 10},
}

// Find returns the instrument for symbol, or false if it is not in the
// catalog.
func Find(symbol string) (Instrument, bool) {
	for _, inst := range Instruments {
		if inst.Symbol == symbol {
			return inst, true
		}
	}
	return Instrument{}, false
}
