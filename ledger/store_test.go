package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memPort is an in-memory persistence port for store tests.
type memPort struct {
	trades  []Trade
	loadErr error
	saveErr error
	saves   int
}

func (p *memPort) Load() ([]Trade, error) {
	if p.loadErr != nil {
		return nil, p.loadErr
	}
	return p.trades, nil
}

func (p *memPort) Save(trades []Trade) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.saves++
	p.trades = make([]Trade, len(trades))
	copy(p.trades, trades)
	return nil
}

func newTrade(id string, result float64) Trade {
	return Trade{
		ID:        id,
		Date:      time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC),
		Symbol:    "EURUSD",
		Direction: Buy,
		Result:    result,
		Emotion:   Calm,
	}
}

func TestLoadBootstrapsSeed(t *testing.T) {
	t.Parallel()

	port := &memPort{}
	s := NewStore(port, nil)
	require.NoError(t, s.Load())

	trades := s.Trades()
	require.Len(t, trades, 1)
	seed := trades[0]
	assert.Equal(t, "init-1", seed.ID)
	assert.Equal(t, "XAUUSD", seed.Symbol)
	assert.Equal(t, Buy, seed.Direction)
	assert.InDelta(t, 1002.0, seed.Result, 1e-9)
	assert.Equal(t, Confident, seed.Emotion)

	// First-run bootstrap persists immediately.
	assert.Equal(t, 1, port.saves)
	require.Len(t, port.trades, 1)
}

func TestLoadExistingState(t *testing.T) {
	t.Parallel()

	port := &memPort{trades: []Trade{newTrade("a", 100), newTrade("b", -50)}}
	s := NewStore(port, nil)
	require.NoError(t, s.Load())

	trades := s.Trades()
	require.Len(t, trades, 2)
	assert.Equal(t, "a", trades[0].ID)
	assert.Equal(t, "b", trades[1].ID)
}

func TestLoadCorruptFallsBackToSeed(t *testing.T) {
	t.Parallel()

	port := &memPort{loadErr: errors.New("parse ledger: bad json")}
	s := NewStore(port, nil)
	require.NoError(t, s.Load())

	trades := s.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, "init-1", trades[0].ID)
}

func TestAddAssignsIDAndPersists(t *testing.T) {
	t.Parallel()

	port := &memPort{}
	s := NewStore(port, nil)
	require.NoError(t, s.Load())

	added := s.Add(Trade{
		Date:      time.Now(),
		Symbol:    "GBPUSD",
		Direction: Sell,
		Result:    -120,
		Emotion:   Fearful,
	})
	assert.NotEmpty(t, added.ID)

	trades := s.Trades()
	require.Len(t, trades, 2)
	assert.Equal(t, added.ID, trades[1].ID)
	assert.Len(t, port.trades, 2)
}

func TestAddThenRemoveRestoresCollection(t *testing.T) {
	t.Parallel()

	port := &memPort{trades: []Trade{newTrade("a", 100)}}
	s := NewStore(port, nil)
	require.NoError(t, s.Load())

	before := s.Trades()
	added := s.Add(newTrade("", 55))
	require.NoError(t, s.Remove(added.ID))

	assert.Equal(t, before, s.Trades())
}

func TestUpdateReplacesAllFieldsExceptID(t *testing.T) {
	t.Parallel()

	port := &memPort{trades: []Trade{newTrade("a", 100)}}
	s := NewStore(port, nil)
	require.NoError(t, s.Load())

	replacement := Trade{
		ID:        "should-be-ignored",
		Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Symbol:    "USDJPY",
		Direction: Sell,
		Result:    -300,
		Emotion:   Revenge,
		Notes:     "chased the move",
	}
	require.NoError(t, s.Update("a", replacement))

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, "USDJPY", got.Symbol)
	assert.Equal(t, Sell, got.Direction)
	assert.InDelta(t, -300.0, got.Result, 1e-9)
	assert.Equal(t, Revenge, got.Emotion)
	assert.Equal(t, "chased the move", got.Notes)
}

func TestUpdateMissingIDReportsNotFound(t *testing.T) {
	t.Parallel()

	port := &memPort{trades: []Trade{newTrade("a", 100)}}
	s := NewStore(port, nil)
	require.NoError(t, s.Load())

	err := s.Update("nope", newTrade("nope", 1))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, s.Trades(), 1)
}

func TestRemoveTwiceIsSafe(t *testing.T) {
	t.Parallel()

	port := &memPort{trades: []Trade{newTrade("a", 100), newTrade("b", -50)}}
	s := NewStore(port, nil)
	require.NoError(t, s.Load())

	require.NoError(t, s.Remove("a"))
	after := s.Trades()

	err := s.Remove("a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, after, s.Trades())
}

func TestSaveFailureDegradesButKeepsState(t *testing.T) {
	t.Parallel()

	port := &memPort{trades: []Trade{newTrade("a", 100)}}
	s := NewStore(port, nil)
	require.NoError(t, s.Load())
	assert.False(t, s.Degraded())

	port.saveErr = errors.New("disk full")
	s.Add(newTrade("b", 20))

	assert.True(t, s.Degraded())
	assert.Len(t, s.Trades(), 2, "in-memory state stays authoritative")

	// Recovery clears the flag on the next successful save.
	port.saveErr = nil
	s.Add(newTrade("c", 30))
	assert.False(t, s.Degraded())
	assert.Len(t, port.trades, 3)
}

func TestTradesReturnsSnapshotCopy(t *testing.T) {
	t.Parallel()

	port := &memPort{trades: []Trade{newTrade("a", 100)}}
	s := NewStore(port, nil)
	require.NoError(t, s.Load())

	snap := s.Trades()
	snap[0].Result = -999

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, got.Result, 1e-9)
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	port := &memPort{trades: []Trade{newTrade("a", 100)}}
	s := NewStore(port, nil)
	require.NoError(t, s.Load())

	_, err := s.Get("zzz")
	assert.ErrorIs(t, err, ErrNotFound)
}
