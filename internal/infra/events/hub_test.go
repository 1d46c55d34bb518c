package events

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tienda/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(bufferSize int) *Hub {
	return NewHub(bufferSize, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_FanOut(t *testing.T) {
	hub := newTestHub(4)
	defer hub.Close()

	id1, ch1 := hub.Subscribe()
	id2, ch2 := hub.Subscribe()
	defer hub.Unsubscribe(id1)
	defer hub.Unsubscribe(id2)

	require.NoError(t, hub.Emit(context.Background(), service.Event{Name: service.EventNewOrder}))

	event1 := <-ch1
	event2 := <-ch2
	assert.Equal(t, service.EventNewOrder, event1.Name)
	assert.Equal(t, service.EventNewOrder, event2.Name)
}

func TestHub_SlowSubscriberDropsEvents(t *testing.T) {
	hub := newTestHub(1)
	defer hub.Close()

	id, ch := hub.Subscribe()
	defer hub.Unsubscribe(id)

	ctx := context.Background()
	require.NoError(t, hub.Emit(ctx, service.Event{Name: "first"}))
	// The buffer holds one event; the second is dropped, not blocked on.
	require.NoError(t, hub.Emit(ctx, service.Event{Name: "second"}))

	event := <-ch
	assert.Equal(t, "first", event.Name)

	select {
	case extra, ok := <-ch:
		require.True(t, ok)
		t.Fatalf("expected no buffered event, got %q", extra.Name)
	default:
	}
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := newTestHub(1)
	defer hub.Close()

	id, ch := hub.Subscribe()
	hub.Unsubscribe(id)

	_, ok := <-ch
	assert.False(t, ok)

	// Emitting after the unsubscribe must not panic on the closed channel.
	require.NoError(t, hub.Emit(context.Background(), service.Event{Name: "late"}))
}

func TestHub_CloseStopsEverything(t *testing.T) {
	hub := newTestHub(1)

	_, ch := hub.Subscribe()
	require.NoError(t, hub.Close())

	_, ok := <-ch
	assert.False(t, ok)

	// Emit after close is a no-op.
	require.NoError(t, hub.Emit(context.Background(), service.Event{Name: "late"}))

	// Subscribing after close yields an already-closed channel.
	_, lateCh := hub.Subscribe()
	_, ok = <-lateCh
	assert.False(t, ok)

	require.NoError(t, hub.Close())
}
