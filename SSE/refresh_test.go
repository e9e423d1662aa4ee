package SSE

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnregisterIsIdempotent(t *testing.T) {
	b := NewRefreshBroadcaster()
	client := make(chan string)
	b.Register(client)

	b.Unregister(client)
	assert.NotPanics(t, func() { b.Unregister(client) })
}

func TestUnregisterAfterSlowClientDropped(t *testing.T) {
	b := NewRefreshBroadcaster()
	client := make(chan string)
	b.Register(client)

	// Nobody reads the channel, so the broadcast times out and drops the
	// client itself; the handler's deferred unregister still runs after.
	b.Broadcast("refresh")
	assert.NotPanics(t, func() { b.Unregister(client) })
}

func TestBroadcastDelivers(t *testing.T) {
	b := NewRefreshBroadcaster()
	client := make(chan string, 1)
	b.Register(client)
	defer b.Unregister(client)

	b.Broadcast("refresh")
	assert.Equal(t, "refresh", <-client)
}
