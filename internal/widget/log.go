package widget

import (
	"sync"

	"github.com/diogo/cricketai/internal/models"
)

// Log is the ordered, append-only chat log.
type Log struct {
	mu       sync.RWMutex
	messages []models.ChatMessage
}

// Append adds a message at the end.
func (l *Log) Append(msg models.ChatMessage) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

// Messages returns a copy of the log in order.
func (l *Log) Messages() []models.ChatMessage {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.ChatMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len returns the number of messages.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}

// Last returns the most recent message from sender.
func (l *Log) Last(sender models.Sender) (models.ChatMessage, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i := len(l.messages) - 1; i >= 0; i-- {
		if l.messages[i].Sender == sender {
			return l.messages[i], true
		}
	}
	return models.ChatMessage{}, false
}
