package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/chris/botbro/internal/discord"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to Discord and serve chats",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(true); err != nil {
			return err
		}

		bot, err := discord.NewBot(cfg.DiscordToken)
		if err != nil {
			return err
		}
		defer bot.Close()

		handle := cfg.DiscordHandle
		if handle == "" {
			handle = bot.Username()
		}
		a, err := newApp(cfg, bot, handle)
		if err != nil {
			return err
		}
		defer a.Close()

		bot.Attach(a.handler)
		a.scheduler.Start()

		log.Info().Str("handle", handle).Msg("bot is running. Press Ctrl+C to exit.")
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutting down")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(runCmd)
}
