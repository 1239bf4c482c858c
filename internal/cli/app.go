package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/chris/botbro/config"
	"github.com/chris/botbro/internal/agent"
	"github.com/chris/botbro/internal/chat"
	"github.com/chris/botbro/internal/chatstate"
	"github.com/chris/botbro/internal/db"
	"github.com/chris/botbro/internal/llm"
	"github.com/chris/botbro/internal/memory"
	"github.com/chris/botbro/internal/roster"
	"github.com/chris/botbro/internal/scheduler"
	"github.com/chris/botbro/internal/search"
	"github.com/chris/botbro/internal/tools"
)

// app is everything behind a transport: agent, tools and scheduler.
type app struct {
	db        *db.DB
	chats     *chatstate.Registry
	scheduler *scheduler.Scheduler
	handler   *chat.Handler
}

func loadRoster(c *config.Config) (*roster.Resolver, error) {
	rows := roster.Default()
	if c.RosterFile != "" {
		var err error
		if rows, err = roster.LoadFile(c.RosterFile); err != nil {
			return nil, err
		}
	}
	return roster.New(rows, c.RosterNames, nil), nil
}

// newApp wires the agent to transport t. handle is the agent's @name.
func newApp(c *config.Config, t chat.Transport, handle string) (*app, error) {
	database, err := db.Open(c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	a, err := wire(c, database, t, handle)
	if err != nil {
		database.Close()
		return nil, err
	}
	return a, nil
}

func wire(c *config.Config, database *db.DB, t chat.Transport, handle string) (*app, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	resolver, err := loadRoster(c)
	if err != nil {
		return nil, err
	}

	client, err := llm.NewClient(llm.ProviderConfig{
		Provider: c.LLMProvider,
		APIKey:   c.LLMAPIKey,
		Model:    c.LLMModel,
		BaseURL:  c.LLMBaseURL,
		Params:   llm.Params{Temperature: c.LLMTemperature, MaxTokens: c.LLMMaxTokens},
	})
	if err != nil {
		return nil, fmt.Errorf("creating LLM client: %w", err)
	}

	// A missing search backend leaves SEARCH unregistered rather than
	// blocking startup.
	var searcher tools.Searcher
	if p, err := search.NewProvider(c.SearchProvider, c.SearXNGURL, c.BraveAPIKey); err != nil {
		log.Warn().Err(err).Msg("search disabled")
	} else {
		searcher = search.NewTool(p, c.SearchTimeout)
	}

	chats := chatstate.New(database)
	sched := scheduler.New(t, chats, resolver, database, loc)
	if err := sched.ScheduleAnnouncement(c.AnnounceCron); err != nil {
		return nil, err
	}

	registry := tools.NewRegistry(searcher, resolver, sched)
	ag := agent.New(client, registry, memory.New(c.MemoryTurns), c.MaxSteps)

	return &app{
		db:        database,
		chats:     chats,
		scheduler: sched,
		handler:   chat.NewHandler(t, ag, chats, handle),
	}, nil
}

func (a *app) Close() {
	a.scheduler.Stop()
	a.db.Close()
}
