package service

import (
	"sync/atomic"

	"github.com/avinaxhroy/billme/internal/clock"
)

// Sequencer hands out monotonically increasing invoice sequence numbers.
// Seeding from the clock keeps numbers from colliding across restarts
// without a database round trip per invoice; the generator wraps the value
// into the six-digit number space.
type Sequencer struct {
	counter atomic.Int64
}

func NewSequencer(clk clock.Clock) *Sequencer {
	s := &Sequencer{}
	s.counter.Store(clk.Now().UnixMilli() % 1_000_000)
	return s
}

func (s *Sequencer) Next() int64 {
	return s.counter.Add(1)
}
