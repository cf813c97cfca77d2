// Package llm defines the interface to the hosted generative-text service
// used for conversational replies, plus a Gemini adapter and a deterministic
// mock. The analytics engine never depends on this package; replies are
// opaque text from the engine's point of view.
package llm

import "context"

// Turn is one prior exchange in a conversation, oldest first.
type Turn struct {
	Text   string
	IsUser bool
}

// Client generates an assistant reply given the user message and the
// preceding conversation history.
type Client interface {
	GenerateReply(ctx context.Context, userMessage string, history []Turn) (string, error)
}
