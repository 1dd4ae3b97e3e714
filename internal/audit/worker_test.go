package audit

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerFansOutToAllSinks(t *testing.T) {
	inbox := make(chan Event, 4)
	first := NewMemoryStore()
	second := NewMemoryStore()
	worker := NewWorker(inbox, slog.Default(), first, second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	inbox <- Event{Action: ActionContextBuilt, SubjectHash: "abc"}

	require.Eventually(t, func() bool {
		return len(first.Events()) == 1 && len(second.Events()) == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Equal(t, ActionContextBuilt, first.Events()[0].Action)
}

func TestWorkerDrainsInboxOnShutdown(t *testing.T) {
	inbox := make(chan Event, 4)
	sink := NewMemoryStore()
	worker := NewWorker(inbox, slog.Default(), sink)

	inbox <- Event{Action: ActionContextBuilt}
	inbox <- Event{Action: ActionLookupFailed}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = worker.Run(ctx)

	assert.Len(t, sink.Events(), 2)
}

func TestPublisherDropsWhenInboxFull(t *testing.T) {
	inbox := make(chan Event, 1)
	publisher := NewPublisher(inbox, slog.Default())

	publisher.Emit(context.Background(), Event{Action: ActionContextBuilt})
	publisher.Emit(context.Background(), Event{Action: ActionContextBuilt})

	// The second emit must return instead of blocking.
	assert.Len(t, inbox, 1)
}

func TestPublisherStampsTimestamp(t *testing.T) {
	inbox := make(chan Event, 1)
	publisher := NewPublisher(inbox, slog.Default())

	publisher.Emit(context.Background(), Event{Action: ActionContextNormalized})

	got := <-inbox
	assert.False(t, got.Timestamp.IsZero())
}
