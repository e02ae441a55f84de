package rate_limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestLimiter_Burst(t *testing.T) {
	l := New(1, 3)

	for range 3 {
		assert.True(t, l.Allow("10.0.0.1"))
	}
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "visitors have separate buckets")
}

func TestLimiter_RemoveIdle(t *testing.T) {
	l := New(1, 1)
	l.GetVisitor("a")
	l.GetVisitor("b")

	assert.Equal(t, 0, l.RemoveIdle(time.Now().Add(-time.Minute)))
	assert.Equal(t, 2, l.RemoveIdle(time.Now().Add(time.Minute)))
	assert.Equal(t, 0, l.Visitors())
}

func TestLimiter_CleanupLoopStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := New(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.StartVisitorCleanupLoop(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	cancel()
	<-done
}
