package agent

import (
	"fmt"
	"time"

	"github.com/chris/botbro/internal/llm"
)

// buildContext assembles the working message list for a run: the persona
// prompt followed by the chat's remembered turns.
func (a *Agent) buildContext(chatID string) []llm.Message {
	history := a.memory.Snapshot(chatID)
	messages := make([]llm.Message, 0, len(history)+1+2*a.maxSteps)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: a.systemPrompt()})
	return append(messages, history...)
}

func (a *Agent) systemPrompt() string {
	now := a.now()
	return fmt.Sprintf("%s\n\nToday is %s, %s.", llm.SystemPrompt, now.Weekday(), now.Format(time.DateOnly))
}
