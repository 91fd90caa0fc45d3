package ledger

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeJSONShape(t *testing.T) {
	t.Parallel()

	trade := Trade{
		ID:        "init-1",
		Date:      time.Date(2024, 4, 10, 9, 30, 0, 0, time.UTC),
		Symbol:    "XAUUSD",
		Direction: Buy,
		Result:    1002,
		Emotion:   Confident,
		Notes:     "Initial institutional breakout.",
	}

	data, err := json.Marshal(trade)
	require.NoError(t, err)

	// Field names and enum values must stay byte-compatible with
	// previously saved ledgers.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "init-1", raw["id"])
	assert.Equal(t, "2024-04-10T09:30:00Z", raw["date"])
	assert.Equal(t, "XAUUSD", raw["symbol"])
	assert.Equal(t, "BUY", raw["direction"])
	assert.Equal(t, float64(1002), raw["result"])
	assert.Equal(t, "🔥 Confident", raw["emotion"])
	assert.Equal(t, "Initial institutional breakout.", raw["notes"])
}

func TestTradeJSONOmitsEmptyNotes(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Trade{ID: "x", Date: time.Now(), Symbol: "EURUSD", Direction: Sell, Emotion: Calm})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	_, present := raw["notes"]
	assert.False(t, present)
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	d, err := ParseDirection("buy")
	require.NoError(t, err)
	assert.Equal(t, Buy, d)

	d, err = ParseDirection(" SELL ")
	require.NoError(t, err)
	assert.Equal(t, Sell, d)

	_, err = ParseDirection("hold")
	assert.Error(t, err)
}

func TestParseEmotion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Emotion
	}{
		{"calm", Calm},
		{"Confident", Confident},
		{"FEARFUL", Fearful},
		{"overconfident", Overconfident},
		{"revenge", Revenge},
		{"🧘 Calm", Calm},
		{"🤡 Revenge", Revenge},
	}
	for _, tc := range tests {
		got, err := ParseEmotion(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseEmotion("euphoric")
	assert.Error(t, err)
}

func TestEmotionWord(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Calm", Calm.Word())
	assert.Equal(t, "Overconfident", Overconfident.Word())
}
