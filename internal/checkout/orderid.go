package checkout

import (
	"strconv"
	"sync"
	"time"
)

const orderIDPrefix = "ORD"

// IDGenerator derives order ids from the last eight digits of the current
// unix time in milliseconds. Ids never repeat within a process until the
// eight-digit window wraps, roughly every 27 hours.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

func (g *IDGenerator) Next() string {
	g.mu.Lock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	g.mu.Unlock()

	s := strconv.FormatInt(ms, 10)
	if len(s) > 8 {
		s = s[len(s)-8:]
	}
	return orderIDPrefix + s
}
