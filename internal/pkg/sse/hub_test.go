package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-1", Event{Event: "report.created", Data: "payload"})

	select {
	case ev := <-ch:
		assert.Equal(t, "report.created", ev.Event)
		assert.Equal(t, "payload", ev.Data)
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestHub_PublishToOtherUserIsIgnored(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-2", Event{Event: "report.created"})

	select {
	case <-ch:
		t.Fatal("event should not reach a different user")
	default:
	}
}

func TestHub_PublishToMany(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("admin-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("admin-2")
	defer cleanup2()

	hub.PublishToMany([]string{"admin-1", "admin-2"}, Event{Event: "report.created"})

	ev1 := <-ch1
	assert.Equal(t, "admin-1", ev1.UserID)
	ev2 := <-ch2
	assert.Equal(t, "admin-2", ev2.UserID)
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	require.Equal(t, 1, hub.SubscriberCount("user-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("user-1"))

	// Publishing after cleanup must not panic.
	hub.Publish("user-1", Event{Event: "report.created"})
}

func TestHub_FullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	for i := 0; i < 20; i++ {
		hub.Publish("user-1", Event{Event: "report.created"})
	}
	// Reaching this point means the overflow was dropped, not blocked on.
}
