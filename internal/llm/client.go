package llm

import "context"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged turn. Treat it as immutable once built.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Params are the sampling settings sent with every completion.
type Params struct {
	Temperature float64
	MaxTokens   int
}

var DefaultParams = Params{Temperature: 0.7, MaxTokens: 500}

type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
