// Package display implements the renderers and the pending indicator used by the
// dispatcher.
package display

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/longkey1/agentchat/internal/agentchat"
)

// List is the in-memory conversation: every bubble rendered since the last Clear.
// It lives only as long as the process.
type List struct {
	ID string

	mu       sync.Mutex
	messages []agentchat.DisplayMessage
	now      func() time.Time
}

// NewList creates an empty display list.
func NewList() *List {
	return &List{
		ID:       uuid.New().String(),
		messages: []agentchat.DisplayMessage{},
		now:      time.Now,
	}
}

// Append adds a bubble with no sequence number.
func (l *List) Append(content string, role agentchat.Role) {
	l.AppendSequenced(0, content, role)
}

// AppendSequenced adds a bubble belonging to outgoing message seq.
func (l *List) AppendSequenced(seq uint64, content string, role agentchat.Role) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, agentchat.DisplayMessage{
		Seq:        seq,
		Role:       role,
		Content:    content,
		RenderedAt: l.now(),
	})
}

// Clear removes every bubble.
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = []agentchat.DisplayMessage{}
}

// Messages returns the bubbles in arrival order.
func (l *List) Messages() []agentchat.DisplayMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]agentchat.DisplayMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// Ordered returns the bubbles grouped by outgoing message in send order, each user
// bubble followed by its reply. Unsequenced bubbles keep their arrival position
// relative to each other and sort first.
func (l *List) Ordered() []agentchat.DisplayMessage {
	out := l.Messages()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Seq != out[j].Seq {
			return out[i].Seq < out[j].Seq
		}
		if out[i].Seq == 0 {
			return false
		}
		return out[i].Role == agentchat.RoleUser && out[j].Role != agentchat.RoleUser
	})
	return out
}

// Len returns the number of bubbles.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}

// GetShortID returns the first 8 characters of the list ID.
func (l *List) GetShortID() string {
	if len(l.ID) >= 8 {
		return l.ID[:8]
	}
	return l.ID
}
