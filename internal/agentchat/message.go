package agentchat

import (
	"strings"
	"time"
)

// Role tags who authored a bubble.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// timestampLayout matches JavaScript's Date.prototype.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// OutgoingMessage is one user message on its way to the webhook.
type OutgoingMessage struct {
	Seq    uint64    // Monotonic per dispatcher, starting at 1
	Text   string    // Trimmed, never empty
	SentAt time.Time // When the message was composed
}

// Timestamp returns SentAt in ISO-8601 UTC with millisecond precision.
func (m OutgoingMessage) Timestamp() string {
	return m.SentAt.UTC().Format(timestampLayout)
}

// DisplayMessage is a rendered bubble owned by a display list.
type DisplayMessage struct {
	Seq        uint64    `json:"seq"`
	Role       Role      `json:"role"`
	Content    string    `json:"content"`
	RenderedAt time.Time `json:"rendered_at"`
}

// webhookRequest is the JSON body posted to the webhook.
type webhookRequest struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// TrimMessage returns the text that would be sent for input, or "" if nothing would.
func TrimMessage(input string) string {
	return strings.TrimSpace(input)
}
