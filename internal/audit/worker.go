package audit

import (
	"context"
	"log/slog"
)

// Worker drains the inbox and fans each event out to every sink. It runs
// until the context is cancelled, then flushes what remains in the channel.
type Worker struct {
	inbox  <-chan Event
	sinks  []Store
	logger *slog.Logger
}

func NewWorker(inbox <-chan Event, logger *slog.Logger, sinks ...Store) *Worker {
	return &Worker{inbox: inbox, sinks: sinks, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case event := <-w.inbox:
			w.dispatch(ctx, event)
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		}
	}
}

func (w *Worker) dispatch(ctx context.Context, event Event) {
	for _, sink := range w.sinks {
		if err := sink.Append(ctx, event); err != nil {
			w.logger.Error("audit sink append failed",
				"action", event.Action,
				"error", err,
			)
		}
	}
}

// drain flushes buffered events with a background context; the run context
// is already cancelled at this point.
func (w *Worker) drain() {
	for {
		select {
		case event := <-w.inbox:
			w.dispatch(context.Background(), event)
		default:
			return
		}
	}
}
