package workers

import (
	"context"
	"log/slog"

	"chat-relay/contract"
	"chat-relay/domain/event"
	"chat-relay/infrastructure/redisbus"
	"chat-relay/messaging"
	"chat-relay/observability"
)

// InboxWorker is the single execution context for everything that arrives
// off the bus. It drains the bounded inbound channel, decodes and
// validates payloads, and only then touches router and tracker state;
// transport goroutines never do. Delivered results fan out to the host's
// sinks for rendering.
type InboxWorker struct {
	log      *slog.Logger
	instance string
	codec    *messaging.Codec
	router   *messaging.Router
	inbound  <-chan redisbus.Inbound
	sinks    []contract.EventSink
	stats    *observability.RelayStats
}

func NewInboxWorker(
	log *slog.Logger,
	instance string,
	codec *messaging.Codec,
	router *messaging.Router,
	inbound <-chan redisbus.Inbound,
	sinks []contract.EventSink,
	stats *observability.RelayStats,
) *InboxWorker {
	return &InboxWorker{
		log:      log,
		instance: instance,
		codec:    codec,
		router:   router,
		inbound:  inbound,
		sinks:    sinks,
		stats:    stats,
	}
}

func (w *InboxWorker) Run(ctx context.Context) error {
	w.log.Info("Starting bus inbox worker")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in := <-w.inbound:
			w.dispatch(ctx, in)
		}
	}
}

func (w *InboxWorker) dispatch(ctx context.Context, in redisbus.Inbound) {
	switch in.Channel {
	case messaging.ChatChannel:
		msg, err := w.codec.DecodeChat(in.Payload)
		if err != nil {
			w.stats.DecodeErrors.Add(1)
			w.log.Warn("Dropping malformed chat payload", "err", err)
			return
		}
		if msg.SenderInstance == w.instance {
			// Our own broadcast echoed back by the transport
			return
		}
		w.stats.Received.Add(1)
		w.fanout(ctx, event.ChatReceived{
			SenderName:     msg.SenderName,
			SenderInstance: msg.SenderInstance,
			Text:           msg.Text,
		})

	case messaging.PrivateChannel:
		msg, err := w.codec.DecodePrivate(in.Payload)
		if err != nil {
			w.stats.DecodeErrors.Add(1)
			w.log.Warn("Dropping malformed private payload", "err", err)
			return
		}
		delivery, ok := w.router.HandleInbound(msg)
		if !ok {
			// Recipient left between publish and delivery; best effort
			return
		}
		w.stats.Received.Add(1)
		w.fanout(ctx, event.PrivateDelivered{
			Recipient:  delivery.Recipient,
			SenderID:   msg.SenderID,
			SenderName: msg.SenderName,
			Text:       delivery.Received.Text,
		})

	default:
		w.log.Debug("Ignoring message on unknown channel", "channel", in.Channel)
	}
}

func (w *InboxWorker) fanout(ctx context.Context, evt event.DomainEvent) {
	for _, sink := range w.sinks {
		if err := sink.Consume(ctx, evt); err != nil {
			w.log.Warn("Sink rejected event", "event", evt.EventName(), "err", err)
		}
	}
}
