package extension

import (
	"sync"

	"booking-calculator/internal/domain/car"
)

type memoKey struct {
	endUnixNano int64
	rate        car.RateCard
	kind        Kind
	days        int
}

func keyOf(b Booking, r Request) memoKey {
	k := memoKey{
		endUnixNano: b.EndDate.UnixNano(),
		rate:        b.Rate,
		kind:        r.kind,
	}
	if r.kind == KindCustom {
		k.days = r.days
	}
	return k
}

// Memo caches the last quote together with the inputs it was derived from
// and recomputes only when those inputs change.
type Memo struct {
	mu     sync.Mutex
	key    memoKey
	quote  Quote
	filled bool
	misses int
}

func NewMemo() *Memo {
	return &Memo{}
}

func (m *Memo) Quote(b Booking, r Request) Quote {
	key := keyOf(b, r)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.filled && m.key == key {
		return m.quote
	}

	m.quote = QuoteExtension(b, r)
	m.key = key
	m.filled = true
	m.misses++
	return m.quote
}

// Computations reports how many times the quote was actually recomputed.
func (m *Memo) Computations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.misses
}
