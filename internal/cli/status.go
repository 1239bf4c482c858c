package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/chris/botbro/config"
	"github.com/chris/botbro/internal/chatstate"
	"github.com/chris/botbro/internal/db"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and announcement state",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		return printStatus(cmd.OutOrStdout(), cfg, database, time.Now())
	},
}

func printStatus(w io.Writer, c *config.Config, database *db.DB, now time.Time) error {
	fmt.Fprintf(w, "llm:       %s %s\n", c.LLMProvider, c.LLMModel)
	fmt.Fprintf(w, "search:    %s\n", c.SearchProvider)
	fmt.Fprintf(w, "steps:     %d, memory %d turns\n", c.MaxSteps, c.MemoryTurns)

	note, err := database.Note(chatstate.NoteKey)
	if err != nil {
		return err
	}
	if note != nil && note.Value != "" {
		fmt.Fprintf(w, "chat:      %s (since %s)\n", note.Value, note.UpdatedAt)
	} else {
		fmt.Fprintln(w, "chat:      none yet")
	}

	last, err := database.LastAnnouncement()
	if err != nil {
		return err
	}
	if last != nil {
		fmt.Fprintf(w, "last post: %s to %s\n", last.CreatedAt, last.ChatID)
	} else {
		fmt.Fprintln(w, "last post: never")
	}

	if c.AnnounceCron == "" {
		fmt.Fprintln(w, "next post: disabled")
		return nil
	}
	loc, err := c.Location()
	if err != nil {
		return err
	}
	sched, err := cron.ParseStandard(c.AnnounceCron)
	if err != nil {
		return fmt.Errorf("invalid ANNOUNCE_CRON %q: %w", c.AnnounceCron, err)
	}
	next := sched.Next(now.In(loc))
	fmt.Fprintf(w, "next post: %s (%s)\n", next.Format("Mon 2006-01-02 15:04 MST"), humanize.RelTime(next, now, "ago", "from now"))
	return nil
}

func init() {
	RootCmd.AddCommand(statusCmd)
}
