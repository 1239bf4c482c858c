// Package agent runs the tool-calling loop.
//
// A run is a small state machine. In awaitingModel the model is called
// and its reply parsed for an ACTION directive; a directive moves the run
// to dispatchingTool, which executes the tool, feeds back an OBSERVATION
// and returns to awaitingModel. Anything else is terminal. The step
// counter caps model calls per run, and hitting the cap is its own
// terminal transition.
package agent

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/chris/botbro/internal/llm"
	"github.com/chris/botbro/internal/memory"
	"github.com/chris/botbro/internal/tools"
)

const (
	DefaultMaxSteps = 5

	observationPrefix = "OBSERVATION: "
	finalAnswerLabel  = "FINAL ANSWER:"
	directiveMarker   = "ACTION:"

	FailureReply = "nein... my brain died. try again."
	LeakReply    = "Done. Alles gut."
	EmptyReply   = "cooked."
)

// Progress receives status text while tools run.
type Progress interface {
	Update(ctx context.Context, text string)
}

type Outcome int

const (
	OutcomeAnswered Outcome = iota
	OutcomeExhausted
	OutcomeBackendFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAnswered:
		return "answered"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeBackendFailed:
		return "backend_failed"
	}
	return "unknown"
}

type Result struct {
	Reply   string
	Steps   int // model calls made
	Outcome Outcome
	// Sanitized is set when the reply still carried directive syntax and
	// was replaced.
	Sanitized bool
}

type Agent struct {
	client   llm.Client
	tools    *tools.Registry
	memory   *memory.Store
	maxSteps int
	now      func() time.Time
}

func New(client llm.Client, registry *tools.Registry, mem *memory.Store, maxSteps int) *Agent {
	if maxSteps < 1 {
		maxSteps = DefaultMaxSteps
	}
	return &Agent{client: client, tools: registry, memory: mem, maxSteps: maxSteps, now: time.Now}
}

type state int

const (
	awaitingModel state = iota
	dispatchingTool
	terminal
)

type run struct {
	chatID    string
	messages  []llm.Message
	step      int
	reply     string // most recent model text
	directive Directive
	final     string
	outcome   Outcome
	logger    zerolog.Logger
}

// Run answers one user message in chatID. It always produces a reply:
// backend failures and runaway tool use end in fixed fallback text.
func (a *Agent) Run(ctx context.Context, chatID, text string, progress Progress) Result {
	a.memory.Append(chatID, llm.RoleUser, text)

	r := &run{
		chatID:   chatID,
		messages: a.buildContext(chatID),
		logger:   log.With().Str("run", uuid.NewString()).Str("chat", chatID).Logger(),
	}
	r.logger.Debug().Int("turns", len(r.messages)).Int("est_tokens", llm.EstimateMessagesTokens(r.messages)).Msg("run started")

	for st := awaitingModel; st != terminal; {
		switch st {
		case awaitingModel:
			st = a.awaitModel(ctx, r)
		case dispatchingTool:
			st = a.dispatch(ctx, r, progress)
		}
	}

	res := Result{Reply: r.final, Steps: r.step, Outcome: r.outcome}
	if res.Reply == "" {
		res.Reply = EmptyReply
	}
	if strings.Contains(res.Reply, directiveMarker) {
		res.Reply = LeakReply
		res.Sanitized = true
	}
	a.memory.Append(chatID, llm.RoleAssistant, res.Reply)

	r.logger.Info().
		Str("outcome", res.Outcome.String()).
		Int("steps", res.Steps).
		Bool("sanitized", res.Sanitized).
		Msg("run finished")
	return res
}

func (a *Agent) awaitModel(ctx context.Context, r *run) state {
	if r.step >= a.maxSteps {
		r.logger.Warn().Int("max_steps", a.maxSteps).Msg("step budget exhausted")
		r.final = r.reply
		r.outcome = OutcomeExhausted
		return terminal
	}
	r.step++

	reply, err := a.client.Complete(ctx, r.messages)
	if err != nil {
		r.logger.Error().Err(err).Int("step", r.step).Msg("model call failed")
		r.final = FailureReply
		r.outcome = OutcomeBackendFailed
		return terminal
	}
	r.reply = reply

	d, ok := ParseDirective(reply)
	if !ok {
		r.final = strings.TrimSpace(strings.ReplaceAll(reply, finalAnswerLabel, ""))
		r.outcome = OutcomeAnswered
		return terminal
	}
	r.directive = d
	return dispatchingTool
}

func (a *Agent) dispatch(ctx context.Context, r *run, progress Progress) state {
	d := r.directive
	r.messages = append(r.messages, llm.Message{Role: llm.RoleAssistant, Content: r.reply})

	if status := a.tools.Status(d.Tool, d.Arg); status != "" && progress != nil {
		progress.Update(ctx, status)
	}

	obs := a.tools.Dispatch(ctx, d.Tool, tools.Call{ChatID: r.chatID, Arg: d.Arg})
	r.logger.Info().Int("step", r.step).Str("tool", string(d.Tool)).Str("arg", d.Arg).Str("obs", truncate(obs, 200)).Msg("tool ran")

	r.messages = append(r.messages, llm.Message{Role: llm.RoleUser, Content: observationPrefix + obs})
	return awaitingModel
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
