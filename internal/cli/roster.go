package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var rosterDate string

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Print the upcoming cleaning schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		if rosterDate != "" {
			d, err := time.ParseInLocation(time.DateOnly, rosterDate, time.Local)
			if err != nil {
				return fmt.Errorf("parsing --date: %w", err)
			}
			now = d
		}

		resolver, err := loadRoster(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), resolver.CheckAt(now))
		return nil
	},
}

func init() {
	rosterCmd.Flags().StringVar(&rosterDate, "date", "", "Resolve as of this date (YYYY-MM-DD)")
	RootCmd.AddCommand(rosterCmd)
}
