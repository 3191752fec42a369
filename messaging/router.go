package messaging

import (
	"context"
	"log/slog"

	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/observability"
)

// RouteKind tags the outcome of routing a private message.
type RouteKind int

const (
	DeliveredLocal RouteKind = iota
	DeliveredRemote
	NotFound
)

func (k RouteKind) String() string {
	switch k {
	case DeliveredLocal:
		return "delivered_local"
	case DeliveredRemote:
		return "delivered_remote"
	default:
		return "not_found"
	}
}

// SentView carries the raw fields for the sender's "sent" line. Formatting
// and escaping belong to the host.
type SentView struct {
	RecipientName string
	Text          string
}

// ReceivedView carries the raw fields for the recipient's "received" line.
type ReceivedView struct {
	SenderName string
	Text       string
}

// RouteResult is the tagged outcome of Route. Recipient and Received are
// set only for DeliveredLocal; Sent is set unless NotFound.
type RouteResult struct {
	Kind      RouteKind
	Recipient domain.Player
	Sent      SentView
	Received  ReceivedView
}

// InboundDelivery is a cross-instance private message that resolved to a
// resident recipient.
type InboundDelivery struct {
	Recipient domain.Player
	Received  ReceivedView
}

// Router decides between local and remote delivery for private messages
// and keeps the tracker consistent on both paths. Callers reject empty
// text and self-targeting before calling Route; the router does not
// re-derive those checks.
type Router struct {
	log        *slog.Logger
	instance   string
	codec      *Codec
	tracker    *Tracker
	directory  contract.Directory
	visibility contract.Visibility
	presence   contract.Presence
	bus        contract.Publisher
	stats      *observability.RelayStats
}

func NewRouter(
	log *slog.Logger,
	instance string,
	codec *Codec,
	tracker *Tracker,
	directory contract.Directory,
	visibility contract.Visibility,
	presence contract.Presence,
	bus contract.Publisher,
	stats *observability.RelayStats,
) *Router {
	return &Router{
		log:        log,
		instance:   instance,
		codec:      codec,
		tracker:    tracker,
		directory:  directory,
		visibility: visibility,
		presence:   presence,
		bus:        bus,
		stats:      stats,
	}
}

// Route delivers locally when the recipient is resident and visible to the
// sender; otherwise it consults the shared presence registry and publishes
// one PrivateMessage on the bus. A recipient hidden from the sender is
// treated as not resident, and since vanished players are unregistered the
// remote path resolves them to NotFound. With the bus down, remote
// delivery degrades to NotFound rather than a distinct connectivity error.
func (r *Router) Route(ctx context.Context, sender domain.Player, recipientName, text string) RouteResult {
	if recipient, ok := r.directory.PlayerByName(recipientName); ok && r.visibility.CanSee(sender, recipient) {
		r.tracker.RecordLocalExchange(sender, recipient)
		r.stats.LocalDeliveries.Add(1)
		return RouteResult{
			Kind:      DeliveredLocal,
			Recipient: recipient,
			Sent:      SentView{RecipientName: recipient.Name, Text: text},
			Received:  ReceivedView{SenderName: sender.Name, Text: text},
		}
	}

	if !r.bus.Connected() {
		r.stats.NotFound.Add(1)
		return RouteResult{Kind: NotFound}
	}

	if !r.presence.ExistsAnywhere(ctx, recipientName) {
		r.stats.NotFound.Add(1)
		return RouteResult{Kind: NotFound}
	}

	senderID := sender.ID
	payload, err := r.codec.EncodePrivate(PrivateMessage{
		SenderID:       &senderID,
		SenderName:     sender.Name,
		SenderInstance: r.instance,
		RecipientName:  recipientName,
		Text:           text,
	})
	if err != nil {
		r.log.Error("Failed to encode private message", "err", err)
		r.stats.NotFound.Add(1)
		return RouteResult{Kind: NotFound}
	}

	r.bus.Publish(ctx, PrivateChannel, payload)
	r.tracker.RecordRemoteSend(sender.ID, recipientName)
	r.stats.RemoteDeliveries.Add(1)
	r.log.Debug("Cross-instance message sent", "from", sender.Name, "to", recipientName)

	// No receipt exists; the sender's view assumes success after publish.
	return RouteResult{
		Kind: DeliveredRemote,
		Sent: SentView{RecipientName: recipientName, Text: text},
	}
}

// HandleInbound resolves a cross-instance private message against local
// residents. A recipient who disconnected between publish and delivery is
// dropped silently; loss is acceptable under the best-effort contract.
func (r *Router) HandleInbound(msg PrivateMessage) (InboundDelivery, bool) {
	recipient, ok := r.directory.PlayerByName(msg.RecipientName)
	if !ok {
		return InboundDelivery{}, false
	}
	r.tracker.RecordInbound(recipient.ID, msg.SenderID, msg.SenderName)
	return InboundDelivery{
		Recipient: recipient,
		Received:  ReceivedView{SenderName: msg.SenderName, Text: msg.Text},
	}, true
}
