package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFileMeansNoState(t *testing.T) {
	t.Parallel()

	fs := NewFileStore(filepath.Join(t.TempDir(), "trades.json"))
	trades, err := fs.Load()
	require.NoError(t, err)
	assert.Nil(t, trades)
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	fs := NewFileStore(filepath.Join(t.TempDir(), "trades.json"))

	in := []Trade{
		{
			ID:        "a",
			Date:      time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC),
			Symbol:    "EURUSD",
			Direction: Buy,
			Result:    150.25,
			Emotion:   Calm,
			Notes:     "london open",
		},
		{
			ID:        "b",
			Date:      time.Date(2024, 4, 11, 14, 30, 0, 0, time.UTC),
			Symbol:    "XAUUSD",
			Direction: Sell,
			Result:    -80,
			Emotion:   Fearful,
		},
	}
	require.NoError(t, fs.Save(in))

	out, err := fs.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)

	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.True(t, out[i].Date.Equal(in[i].Date))
		assert.Equal(t, in[i].Symbol, out[i].Symbol)
		assert.Equal(t, in[i].Direction, out[i].Direction)
		assert.InDelta(t, in[i].Result, out[i].Result, 1e-9)
		assert.Equal(t, in[i].Emotion, out[i].Emotion)
		assert.Equal(t, in[i].Notes, out[i].Notes)
	}
}

func TestFileStoreCorruptSlot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trades.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewFileStore(path).Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse ledger")
}

func TestFileStoreCreatesParentDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "data", "trades.json")
	fs := NewFileStore(path)
	require.NoError(t, fs.Save([]Trade{}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestStoreOverFileStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trades.json")

	// First run seeds and persists.
	s := NewStore(NewFileStore(path), nil)
	require.NoError(t, s.Load())
	added := s.Add(Trade{Date: time.Now(), Symbol: "USOIL", Direction: Sell, Result: -40, Emotion: Overconfident})

	// A fresh store over the same slot sees identical state.
	s2 := NewStore(NewFileStore(path), nil)
	require.NoError(t, s2.Load())

	trades := s2.Trades()
	require.Len(t, trades, 2)
	assert.Equal(t, "init-1", trades[0].ID)
	assert.Equal(t, added.ID, trades[1].ID)
}
