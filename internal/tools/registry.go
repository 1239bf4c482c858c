// Package tools implements the tools the agent can call: SEARCH, CALC,
// REMIND and CHECK_SCHEDULE. Each tool takes the raw argument text and
// returns an observation string; failures are reported in the
// observation, never as errors.
package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Name string

const (
	Search        Name = "SEARCH"
	Calculate     Name = "CALC"
	Remind        Name = "REMIND"
	CheckSchedule Name = "CHECK_SCHEDULE"
)

const unknownTool = "Unknown tool."

// Call is one tool invocation from a chat.
type Call struct {
	ChatID string
	Arg    string
}

type Searcher interface {
	Search(ctx context.Context, query string) string
}

type Roster interface {
	Check() string
}

type Reminders interface {
	ScheduleReminder(chatID string, delay time.Duration, reason string) error
}

type Tool struct {
	Name Name
	// Status, when set, returns the progress text shown while the tool runs.
	Status func(arg string) string
	Run    func(ctx context.Context, call Call) string
}

type Registry struct {
	tools map[Name]Tool
}

// NewRegistry wires the built-in tools. A nil dependency leaves its tool
// unregistered; CALC needs none.
func NewRegistry(search Searcher, roster Roster, reminders Reminders) *Registry {
	r := &Registry{tools: make(map[Name]Tool)}
	r.Register(Tool{
		Name: Calculate,
		Run:  func(_ context.Context, c Call) string { return Calc(c.Arg) },
	})
	if search != nil {
		r.Register(Tool{
			Name:   Search,
			Status: func(arg string) string { return fmt.Sprintf("🔍 checking %s...", arg) },
			Run:    func(ctx context.Context, c Call) string { return search.Search(ctx, c.Arg) },
		})
	}
	if roster != nil {
		r.Register(Tool{
			Name:   CheckSchedule,
			Status: func(string) string { return "📅 checking roster..." },
			Run:    func(context.Context, Call) string { return roster.Check() },
		})
	}
	if reminders != nil {
		r.Register(Tool{
			Name: Remind,
			Run:  func(_ context.Context, c Call) string { return remind(reminders, c) },
		})
	}
	return r
}

func (r *Registry) Register(t Tool) {
	r.tools[t.Name] = t
}

func (r *Registry) Has(name Name) bool {
	_, ok := r.tools[name]
	return ok
}

// Status returns the progress text for a tool, or "" if it has none.
func (r *Registry) Status(name Name, arg string) string {
	t, ok := r.tools[name]
	if !ok || t.Status == nil {
		return ""
	}
	return t.Status(arg)
}

// Dispatch runs the named tool. A panicking tool is contained and reported
// as an observation so the agent loop keeps going.
func (r *Registry) Dispatch(ctx context.Context, name Name, call Call) (obs string) {
	t, ok := r.tools[name]
	if !ok {
		return unknownTool
	}
	defer func() {
		if p := recover(); p != nil {
			log.Error().Str("tool", string(name)).Interface("panic", p).Msg("tool panicked")
			obs = fmt.Sprintf("%s failed.", name)
		}
	}()
	return t.Run(ctx, call)
}

func remind(reminders Reminders, c Call) string {
	rem, err := ParseReminder(c.Arg)
	if err != nil {
		return remindFormatError
	}
	if err := reminders.ScheduleReminder(c.ChatID, rem.Delay, rem.Reason); err != nil {
		log.Error().Err(err).Str("chat", c.ChatID).Msg("scheduling reminder")
		return fmt.Sprintf("Reminder failed: %v", err)
	}
	return fmt.Sprintf("Timer set for %s minutes.", FormatFloat(rem.Minutes))
}
