package audit

import (
	"context"
	"log/slog"
	"time"

	"spc-gateway/pkg/requestcontext"
)

// Publisher hands events to the background worker without blocking. When the
// inbox is full the event is dropped and logged; auditing must never stall a
// consultation.
type Publisher struct {
	inbox  chan<- Event
	logger *slog.Logger
}

func NewPublisher(inbox chan<- Event, logger *slog.Logger) *Publisher {
	return &Publisher{inbox: inbox, logger: logger}
}

// Emit enriches the event from the request context and queues it.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.ClientID == "" {
		event.ClientID = requestcontext.ClientID(ctx)
	}

	select {
	case p.inbox <- event:
	default:
		p.logger.Warn("audit inbox full, dropping event",
			"action", event.Action,
			"request_id", event.RequestID,
		)
	}
}
