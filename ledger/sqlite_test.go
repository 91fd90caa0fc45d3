package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ledger.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteFreshMeansNoState(t *testing.T) {
	t.Parallel()

	s := newTestSQLite(t)
	trades, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, trades)
}

func TestSQLiteEmptiedLedgerIsPriorState(t *testing.T) {
	t.Parallel()

	s := newTestSQLite(t)
	require.NoError(t, s.Save([]Trade{
		{ID: "a", Date: time.Now().UTC(), Symbol: "EURUSD", Direction: Buy, Result: 10, Emotion: Calm},
	}))
	require.NoError(t, s.Save([]Trade{}))

	// No rows, but not a first run: must not read as "no prior state".
	trades, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, trades)
	assert.Empty(t, trades)
}

func TestSQLiteRoundTripPreservesOrder(t *testing.T) {
	t.Parallel()

	s := newTestSQLite(t)

	// Deliberately not in date order; load must return insertion order.
	in := []Trade{
		{ID: "c", Date: time.Date(2024, 4, 12, 10, 0, 0, 0, time.UTC), Symbol: "USDJPY", Direction: Buy, Result: 75, Emotion: Calm},
		{ID: "a", Date: time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC), Symbol: "EURUSD", Direction: Buy, Result: 150, Emotion: Confident, Notes: "breakout"},
		{ID: "b", Date: time.Date(2024, 4, 11, 14, 0, 0, 0, time.UTC), Symbol: "XAUUSD", Direction: Sell, Result: -80, Emotion: Revenge},
	}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "c", out[0].ID)
	assert.Equal(t, "a", out[1].ID)
	assert.Equal(t, "b", out[2].ID)
	assert.True(t, out[1].Date.Equal(in[1].Date))
	assert.Equal(t, Confident, out[1].Emotion)
	assert.Equal(t, "breakout", out[1].Notes)
	assert.InDelta(t, -80.0, out[2].Result, 1e-9)
}

func TestSQLiteSaveOverwritesWholeCollection(t *testing.T) {
	t.Parallel()

	s := newTestSQLite(t)

	require.NoError(t, s.Save([]Trade{
		{ID: "a", Date: time.Now().UTC(), Symbol: "EURUSD", Direction: Buy, Result: 10, Emotion: Calm},
		{ID: "b", Date: time.Now().UTC(), Symbol: "GBPUSD", Direction: Sell, Result: 20, Emotion: Calm},
	}))

	require.NoError(t, s.Save([]Trade{
		{ID: "b", Date: time.Now().UTC(), Symbol: "GBPUSD", Direction: Sell, Result: 20, Emotion: Calm},
	}))

	out, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)
}

func TestStoreOverSQLite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ledger.sqlite")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	store := NewStore(s, nil)
	require.NoError(t, store.Load())
	store.Add(Trade{Date: time.Now(), Symbol: "XAGUSD", Direction: Buy, Result: 12.5, Emotion: Calm})
	require.NoError(t, s.Close())

	s2, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer s2.Close()
	store2 := NewStore(s2, nil)
	require.NoError(t, store2.Load())

	trades := store2.Trades()
	require.Len(t, trades, 2)
	assert.Equal(t, "init-1", trades[0].ID)
	assert.Equal(t, "XAGUSD", trades[1].Symbol)
}

func TestStoreOverSQLiteKeepsEmptiedLedgerAcrossRestart(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ledger.sqlite")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	store := NewStore(s, nil)
	require.NoError(t, store.Load())
	for _, tr := range store.Trades() {
		require.NoError(t, store.Remove(tr.ID))
	}
	require.NoError(t, s.Close())

	// Restart: the emptied ledger must stay empty, not re-seed.
	s2, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer s2.Close()
	store2 := NewStore(s2, nil)
	require.NoError(t, store2.Load())
	assert.Empty(t, store2.Trades())
}
