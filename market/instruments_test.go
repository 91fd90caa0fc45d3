package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	t.Parallel()

	inst, ok := Find("EURUSD")
	assert.True(t, ok)
	assert.Equal(t, Forex, inst.Type)
	assert.InDelta(t, 10.0, inst.PipValue, 1e-9)

	gold, ok := Find("XAUUSD")
	assert.True(t, ok)
	assert.Equal(t, Commodity, gold.Type)
	assert.InDelta(t, 100.0, gold.PipValue, 1e-9)

	_, ok = Find("BTCUSD")
	assert.False(t, ok)
}

func TestCatalogSymbolsUnique(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, inst := range Instruments {
		assert.False(t, seen[inst.Symbol], "duplicate symbol %s", inst.Symbol)
		seen[inst.Symbol] = true
		assert.Greater(t, inst.PipValue, 0.0)
	}
}
