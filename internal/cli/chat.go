package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chris/botbro/internal/chat"
)

const consoleChatID = "console"

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the agent from the terminal",
	Long:  "Runs the agent against stdin/stdout. Piped input is answered once; a terminal gets a prompt loop.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(false); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		console := chat.NewConsole(out)
		a, err := newApp(cfg, console, "")
		if err != nil {
			return err
		}
		defer a.Close()
		a.scheduler.Start()

		stat, err := os.Stdin.Stat()
		isPipe := err == nil && (stat.Mode()&os.ModeCharDevice) == 0
		return repl(cmd.Context(), cmd.InOrStdin(), out, a.handler, isPipe)
	},
}

// repl feeds lines from in to h as private console messages.
func repl(ctx context.Context, in io.Reader, out io.Writer, h *chat.Handler, once bool) error {
	prompt := func() {
		if !once {
			fmt.Fprint(out, "botbro> ")
		}
	}

	scanner := bufio.NewScanner(in)
	prompt()
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			prompt()
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		h.Handle(ctx, chat.Inbound{
			ChatID:   consoleChatID,
			SenderID: "local",
			Text:     input,
			Private:  true,
		})

		if once {
			break // single exchange in pipe mode
		}
		prompt()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(chatCmd)
}
