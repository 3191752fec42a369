// Package sink provides ready-made consumers for relay events. A host
// embedding the relay usually replaces these with its own rendering.
package sink

import (
	"context"
	"log/slog"

	"chat-relay/domain/event"
)

// ConsoleSink renders inbound events to the structured log. It stands in
// for a real host surface (a game console, a web client) and doubles as a
// diagnostic tap when run standalone.
type ConsoleSink struct {
	log *slog.Logger
}

func NewConsoleSink(log *slog.Logger) *ConsoleSink {
	return &ConsoleSink{log: log}
}

// Consume implements the EventSink interface.
func (s *ConsoleSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.PrivateDelivered:
		s.log.Info("Private message delivered",
			"recipient", evt.Recipient.Name,
			"sender", evt.SenderName,
			"text", evt.Text,
		)
	case event.ChatReceived:
		s.log.Info("Chat received",
			"sender", evt.SenderName,
			"instance", evt.SenderInstance,
			"text", evt.Text,
		)
	default:
		s.log.Debug("Ignoring unknown event", "event", e.EventName())
	}
	return nil
}
