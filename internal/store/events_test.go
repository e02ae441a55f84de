package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBroker_SubscribeCancel(t *testing.T) {
	b := NewBroker()
	events, cancel := b.Subscribe(1)
	assert.Equal(t, 1, b.Subscribers())

	cancel()
	cancel()

	_, open := <-events
	assert.False(t, open)
	assert.Equal(t, 0, b.Subscribers())

	b.Publish(newEvent(CartCleared))
}

func TestBroker_FullSubscriberDropsEvents(t *testing.T) {
	b := NewBroker()
	slow, cancelSlow := b.Subscribe(1)
	defer cancelSlow()
	fast, cancelFast := b.Subscribe(3)
	defer cancelFast()

	for range 3 {
		b.Publish(newEvent(CartCleared))
	}

	assert.Len(t, slow, 1)
	assert.Len(t, fast, 3)
}
