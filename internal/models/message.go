package models

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a chat message
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ChatMessage is one entry of the chat log. Entries are never mutated once appended.
type ChatMessage struct {
	ID     string    `json:"id"`
	Text   string    `json:"text"`
	Sender Sender    `json:"sender"`
	Time   time.Time `json:"time"`
}

// NewChatMessage stamps a message with a fresh ID and the current time.
func NewChatMessage(text string, sender Sender) ChatMessage {
	return ChatMessage{
		ID:     uuid.NewString(),
		Text:   text,
		Sender: sender,
		Time:   time.Now(),
	}
}

// IsUser reports whether the message was typed by the user.
func (m ChatMessage) IsUser() bool {
	return m.Sender == SenderUser
}
