// Package scheduler runs timed deliveries: one-shot reminders set by the
// REMIND tool and the weekly roster announcement.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/chris/botbro/internal/logx"
	"github.com/chris/botbro/internal/tools"
)

const (
	// MinReminderDelay keeps a zero-minute reminder from firing before
	// the reply that set it.
	MinReminderDelay = time.Second

	AnnouncementHeader = "🔔 **SATURDAY CLEANING CHECK:**\n\n"

	sendTimeout = 30 * time.Second
)

// Sender delivers a message. chat.Transport satisfies it.
type Sender interface {
	Send(ctx context.Context, chatID, text string) (string, error)
}

// ActiveChat reports the announcement target. *chatstate.Registry
// satisfies it.
type ActiveChat interface {
	Get() (string, bool)
}

type Roster interface {
	Check() string
}

// AnnouncementLog records broadcasts. *db.DB satisfies it.
type AnnouncementLog interface {
	RecordAnnouncement(chatID, content string) (int64, error)
}

type Scheduler struct {
	cron   *cron.Cron
	sender Sender
	chats  ActiveChat
	roster Roster
	log    AnnouncementLog
	now    func() time.Time

	mu       sync.Mutex
	announce cron.EntryID
	pending  map[cron.EntryID]struct{}
}

// New builds a stopped scheduler evaluating cron specs in loc. store may
// be nil.
func New(sender Sender, chats ActiveChat, roster Roster, store AnnouncementLog, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	logger := cron.PrintfLogger(logx.Printf{})
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger)),
		),
		sender:  sender,
		chats:   chats,
		roster:  roster,
		log:     store,
		now:     time.Now,
		pending: make(map[cron.EntryID]struct{}),
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Int("entries", len(s.cron.Entries())).Msg("scheduler started")
}

// Stop halts the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// once fires a single time at `at`.
type once struct{ at time.Time }

func (o once) Next(t time.Time) time.Time {
	if t.Before(o.at) {
		return o.at
	}
	return time.Time{}
}

// ScheduleReminder implements tools.Reminders.
func (s *Scheduler) ScheduleReminder(chatID string, delay time.Duration, reason string) error {
	if chatID == "" {
		return fmt.Errorf("scheduling reminder: no chat")
	}
	if delay < MinReminderDelay {
		delay = MinReminderDelay
	}
	at := s.now().Add(delay)
	text := tools.ReminderText(reason)

	s.mu.Lock()
	defer s.mu.Unlock()

	var id cron.EntryID
	id = s.cron.Schedule(once{at: at}, cron.FuncJob(func() {
		s.mu.Lock()
		self := id
		delete(s.pending, self)
		s.mu.Unlock()
		s.cron.Remove(self)
		s.fireReminder(chatID, text)
	}))
	s.pending[id] = struct{}{}

	log.Info().Str("chat", chatID).Str("due", humanize.Time(at)).Msg("reminder scheduled")
	return nil
}

func (s *Scheduler) fireReminder(chatID, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	if _, err := s.sender.Send(ctx, chatID, text); err != nil {
		log.Error().Err(err).Str("chat", chatID).Msg("reminder delivery failed")
		return
	}
	log.Info().Str("chat", chatID).Msg("reminder fired")
}

// Pending is the number of reminders not yet fired.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// ScheduleAnnouncement registers the weekly roster broadcast. An empty
// spec disables it. Calling it again replaces the previous entry.
func (s *Scheduler) ScheduleAnnouncement(spec string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.announce != 0 {
		s.cron.Remove(s.announce)
		s.announce = 0
	}
	if spec == "" {
		log.Info().Msg("weekly announcement disabled")
		return nil
	}

	id, err := s.cron.AddFunc(spec, s.Announce)
	if err != nil {
		return fmt.Errorf("invalid announcement cron %q: %w", spec, err)
	}
	s.announce = id
	log.Info().Str("cron", spec).Msg("weekly announcement scheduled")
	return nil
}

// NextAnnouncement returns when the broadcast runs next, or the zero time
// if none is scheduled or the scheduler is not running.
func (s *Scheduler) NextAnnouncement() time.Time {
	s.mu.Lock()
	id := s.announce
	s.mu.Unlock()
	if id == 0 {
		return time.Time{}
	}
	return s.cron.Entry(id).Next
}

// Announce posts the roster to the last active chat. Without one it does
// nothing.
func (s *Scheduler) Announce() {
	chatID, ok := s.chats.Get()
	if !ok {
		log.Info().Msg("weekly announcement skipped: no active chat")
		return
	}
	text := AnnouncementHeader + s.roster.Check()

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	if _, err := s.sender.Send(ctx, chatID, text); err != nil {
		log.Error().Err(err).Str("chat", chatID).Msg("weekly announcement failed")
		return
	}
	if s.log != nil {
		if _, err := s.log.RecordAnnouncement(chatID, text); err != nil {
			log.Warn().Err(err).Msg("recording announcement")
		}
	}
	log.Info().Str("chat", chatID).Msg("weekly announcement sent")
}
