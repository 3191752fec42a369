package messaging

import (
	"sync"

	"chat-relay/domain"

	"github.com/google/uuid"
)

// Tracker keeps each resident player's reply target (who last messaged
// them) and last-sent target (whom they last messaged). Both maps are
// process-local caches rebuilt on every delivery; nothing survives a
// restart and nothing is shared with other instances.
type Tracker struct {
	mu           sync.RWMutex
	replyTargets map[uuid.UUID]domain.TargetInfo
	lastSent     map[uuid.UUID]domain.TargetInfo
}

func NewTracker() *Tracker {
	return &Tracker{
		replyTargets: make(map[uuid.UUID]domain.TargetInfo),
		lastSent:     make(map[uuid.UUID]domain.TargetInfo),
	}
}

// RecordLocalExchange marks sender and recipient as each other's reply
// target and updates the sender's last-sent target. A local exchange is the
// only delivery where both identities are resident.
func (t *Tracker) RecordLocalExchange(sender, recipient domain.Player) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.replyTargets[recipient.ID] = domain.LocalTarget(sender)
	t.replyTargets[sender.ID] = domain.LocalTarget(recipient)
	t.lastSent[sender.ID] = domain.LocalTarget(recipient)
}

// RecordRemoteSend stores a name-only last-sent target; the recipient's
// identity lives on another instance. The recipient's reply target is
// updated by the receiving instance when the message lands there.
func (t *Tracker) RecordRemoteSend(senderID uuid.UUID, recipientName string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastSent[senderID] = domain.RemoteTarget(recipientName)
}

// RecordInbound updates the recipient's reply target for a cross-instance
// message that resolved here. senderID may be nil.
func (t *Tracker) RecordInbound(recipientID uuid.UUID, senderID *uuid.UUID, senderName string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.replyTargets[recipientID] = domain.TargetInfo{ID: senderID, Name: senderName}
}

func (t *Tracker) ReplyTarget(id uuid.UUID) (domain.TargetInfo, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	target, ok := t.replyTargets[id]
	return target, ok
}

func (t *Tracker) LastSent(id uuid.UUID) (domain.TargetInfo, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	target, ok := t.lastSent[id]
	return target, ok
}

// Clear drops both entries for a player leaving this instance.
func (t *Tracker) Clear(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.replyTargets, id)
	delete(t.lastSent, id)
}
