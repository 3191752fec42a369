package messaging

import (
	"encoding/json"
	"fmt"

	apperrors "chat-relay/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Bus channel names. Part of the cross-instance contract; every instance
// subscribes to exactly these two.
const (
	ChatChannel    = "chatrelay:chat"
	PrivateChannel = "chatrelay:private"
)

// ChatMessage is the wire form of a chat broadcast. Field names are shared
// with every other instance and must not change.
type ChatMessage struct {
	SenderName     string `json:"senderName" validate:"required"`
	SenderInstance string `json:"senderInstance" validate:"required"`
	Text           string `json:"text"`
}

// PrivateMessage is the wire form of a cross-instance private message.
// SenderID is absent when the origin instance could not resolve a stable
// identity; receivers fall back to the name.
type PrivateMessage struct {
	SenderID       *uuid.UUID `json:"senderId,omitempty"`
	SenderName     string     `json:"senderName" validate:"required"`
	SenderInstance string     `json:"senderInstance"`
	RecipientName  string     `json:"recipientName" validate:"required"`
	Text           string     `json:"text"`
}

// Codec serializes the two wire types and gates decodes on their required
// fields. A payload that passes decode is safe to hand to delivery logic.
type Codec struct {
	validate *validator.Validate
}

func NewCodec() *Codec {
	return &Codec{validate: validator.New()}
}

func (c *Codec) EncodeChat(m ChatMessage) (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode chat message: %w", err)
	}
	return string(data), nil
}

func (c *Codec) EncodePrivate(m PrivateMessage) (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode private message: %w", err)
	}
	return string(data), nil
}

// DecodeChat rejects payloads missing senderName or senderInstance. Extra
// fields are ignored.
func (c *Codec) DecodeChat(payload string) (ChatMessage, error) {
	var m ChatMessage
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return ChatMessage{}, fmt.Errorf("decode chat message: %w", err)
	}
	if err := c.validate.Struct(m); err != nil {
		return ChatMessage{}, fmt.Errorf("decode chat message: %w: %v", apperrors.ErrMissingField, err)
	}
	return m, nil
}

// DecodePrivate rejects payloads missing senderName or recipientName.
func (c *Codec) DecodePrivate(payload string) (PrivateMessage, error) {
	var m PrivateMessage
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return PrivateMessage{}, fmt.Errorf("decode private message: %w", err)
	}
	if err := c.validate.Struct(m); err != nil {
		return PrivateMessage{}, fmt.Errorf("decode private message: %w: %v", apperrors.ErrMissingField, err)
	}
	return m, nil
}
