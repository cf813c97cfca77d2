package llm

import (
	"context"
	"fmt"
)

// Mock is a deterministic Client for development and tests.
type Mock struct{}

// NewMock creates a mock reply generator.
func NewMock() *Mock {
	return &Mock{}
}

// GenerateReply echoes the user message in a supportive framing.
func (m *Mock) GenerateReply(ctx context.Context, userMessage string, history []Turn) (string, error) {
	return fmt.Sprintf("I hear you. You said %q - tell me a bit more about how that feels.", userMessage), nil
}
