package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub()

	ch1, cancel1 := hub.Subscribe()
	ch2, cancel2 := hub.Subscribe()
	defer cancel1()
	defer cancel2()

	hub.Publish("payslips", nil)

	ev1 := <-ch1
	ev2 := <-ch2
	assert.Equal(t, "payslips", ev1.Topic)
	assert.Equal(t, "payslips", ev2.Topic)
}

func TestHubCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cancel := hub.Subscribe()
	require.Equal(t, 1, hub.SubscriberCount())

	cancel()
	assert.Equal(t, 0, hub.SubscriberCount())

	// Publishing after cleanup must not panic on the closed channel.
	hub.Publish("attendance", nil)
}

func TestHubFullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cancel := hub.Subscribe()
	defer cancel()

	// More events than the channel buffer; Publish must drop, not block.
	for i := 0; i < 100; i++ {
		hub.Publish("employees", nil)
	}
}
