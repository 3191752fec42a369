package event

import (
	"chat-relay/domain"

	"github.com/google/uuid"
)

// DomainEvent is anything the relay hands to host sinks for rendering or
// side effects. Sinks run on the inbox context; they must not block.
type DomainEvent interface {
	EventName() string
}

// PrivateDelivered fires when a cross-instance private message resolved to
// a resident recipient. SenderID is nil when the origin instance could not
// attach a stable identity.
type PrivateDelivered struct {
	Recipient  domain.Player
	SenderID   *uuid.UUID
	SenderName string
	Text       string
}

func (PrivateDelivered) EventName() string { return "private_delivered" }

// ChatReceived fires for a chat broadcast that originated on another
// instance. The host decides how to prefix and render it.
type ChatReceived struct {
	SenderName     string
	SenderInstance string
	Text           string
}

func (ChatReceived) EventName() string { return "chat_received" }
