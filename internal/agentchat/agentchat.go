// Package agentchat provides the core of the chat widget: the dispatcher that sends
// one message to the agent webhook and the normalizer that reduces the webhook's
// reply to a single displayable answer.
//
// Rendering is done through the Renderer and PendingIndicator interfaces so the
// same dispatcher drives the terminal, the in-memory display list and tests.
package agentchat

import "io"

// Renderer appends chat bubbles to a display.
// Implementations must be safe to call from multiple goroutines.
type Renderer interface {
	// Append adds one bubble with the given content and role.
	Append(content string, role Role)

	// Clear removes every bubble.
	Clear()
}

// SequenceRenderer is implemented by renderers that can keep a reply next to the
// message it answers when replies arrive out of send order.
type SequenceRenderer interface {
	Renderer

	// AppendSequenced adds one bubble tagged with the sequence number of the
	// outgoing message it belongs to.
	AppendSequenced(seq uint64, content string, role Role)
}

// PendingIndicator is the "agent is typing" affordance.
// Show and Hide are always called in pairs, once per exchange.
type PendingIndicator interface {
	Show()
	Hide()
}

// AudioPlayer receives audio replies. Playing is an effect of an exchange, not
// part of the rendered text.
type AudioPlayer interface {
	Play(contentType string, audio io.Reader) error
}

// Config defines what the dispatcher needs from the configuration.
type Config interface {
	GetWebhookURL() string
}

type noopPending struct{}

func (noopPending) Show() {}
func (noopPending) Hide() {}
