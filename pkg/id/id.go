// Package id issues the time-sortable identifiers trade records are
// keyed by.
package id

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// The monotonic entropy source is not safe for concurrent use, so a
// single locked generator issues all ids.
var gen = struct {
	sync.Mutex
	entropy *ulid.MonotonicEntropy
}{entropy: ulid.Monotonic(rand.Reader, 0)}

// New returns a fresh ULID string. Ids issued within the same
// millisecond stay lexicographically increasing, so sorting a ledger by
// id recovers creation order.
func New() string {
	gen.Lock()
	defer gen.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), gen.entropy).String()
}
