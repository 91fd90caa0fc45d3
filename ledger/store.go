package ledger

import (
	"errors"
	"sync"
	"time"

	"github.com/rustyeddy/axon/logging"
	"github.com/rustyeddy/axon/pkg/id"
)

// ErrNotFound is returned by Get, Update and Remove when no trade has
// the given id. Repeating a Remove is safe: the second call reports
// ErrNotFound and leaves the collection unchanged.
var ErrNotFound = errors.New("trade not found")

// Port is the persistence collaborator behind a Store. Save always
// receives the entire collection; there is no partial persistence.
type Port interface {
	Load() ([]Trade, error)
	Save(trades []Trade) error
}

// Store holds the authoritative in-memory trade collection and persists
// the full collection through its Port after every mutation. All
// methods are safe for concurrent use; reads work on snapshot copies so
// an in-flight mutation can never tear an aggregation.
type Store struct {
	mu       sync.Mutex
	trades   []Trade
	port     Port
	log      *logging.Logger
	degraded bool
}

// NewStore creates a store over the given persistence port. A nil
// logger is replaced with a silent one.
func NewStore(port Port, log *logging.Logger) *Store {
	if log == nil {
		log = logging.NewSilent()
	}
	return &Store{port: port, log: log}
}

// Load pulls prior state from the port. First run (no state) and
// corrupt state both bootstrap the seed ledger and persist it
// immediately; a corrupt slot is logged but never fatal.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trades, err := s.port.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("ledger load failed, starting from seed")
		trades = nil
	}
	if trades == nil {
		trades = seedTrades()
	}

	s.trades = trades
	s.persistLocked()
	return nil
}

// seedTrades is the first-run bootstrap ledger.
func seedTrades() []Trade {
	return []Trade{{
		ID:        "init-1",
		Date:      time.Now(),
		Symbol:    "XAUUSD",
		Direction: Buy,
		Result:    1002,
		Emotion:   Confident,
		Notes:     "Initial institutional breakout.",
	}}
}

// Trades returns a snapshot copy of the collection in insertion order.
func (s *Store) Trades() []Trade {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Trade, len(s.trades))
	copy(out, s.trades)
	return out
}

// Get returns the trade with the given id.
func (s *Store) Get(tradeID string) (Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.trades {
		if t.ID == tradeID {
			return t, nil
		}
	}
	return Trade{}, ErrNotFound
}

// Add appends a trade and persists. An empty ID is filled with a fresh
// ULID; the stored trade is returned.
func (s *Store) Add(t Trade) Trade {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = id.New()
	}
	s.trades = append(s.trades, t)
	s.persistLocked()
	return t
}

// Update replaces the trade whose id matches, keeping the original id.
func (s *Store) Update(tradeID string, t Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.trades {
		if s.trades[i].ID == tradeID {
			t.ID = tradeID
			s.trades[i] = t
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the trade with the given id.
func (s *Store) Remove(tradeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.trades {
		if s.trades[i].ID == tradeID {
			s.trades = append(s.trades[:i], s.trades[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

// Degraded reports whether the most recent save failed. The in-memory
// collection stays authoritative for the session either way.
func (s *Store) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// persistLocked writes the whole collection through the port. Callers
// must hold s.mu.
func (s *Store) persistLocked() {
	if err := s.port.Save(s.trades); err != nil {
		s.degraded = true
		s.log.Warn().Err(err).Msg("ledger save failed, in-memory state is authoritative")
		return
	}
	s.degraded = false
}
