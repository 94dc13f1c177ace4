package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/cadence/internal/models"
	"github.com/misterclayt0n/cadence/internal/notify"
	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var remindDryRun bool

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Show the reminders due today and queue their notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		loc, err := location()
		if err != nil {
			return err
		}

		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		var dispatcher notify.Dispatcher = st
		if remindDryRun {
			dispatcher = notify.LogDispatcher{}
		}

		reminders, err := newCoordinator(st, loc, dispatcher).Dispatch(ctx)
		if err != nil {
			// A failed cycle only means nothing is shown this time.
			for _, e := range multierr.Errors(err) {
				log.Warnf("remind: %s", e)
			}
		}
		if len(reminders) == 0 {
			fmt.Println("Nothing due today.")
			return nil
		}

		red := color.New(color.FgRed, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		for _, r := range reminders {
			marker := cyan("•")
			switch r.Schedule.Reminder {
			case models.ReminderInsistent:
				marker = red("!!")
			case models.ReminderNotification:
				marker = yellow("⏰")
			}
			fmt.Printf("%s %s  %s\n", marker, r.Message, color.New(color.Faint).Sprintf("(schedule #%d)", r.Schedule.ID))
		}
		return nil
	},
}

func init() {
	remindCmd.Flags().BoolVar(&remindDryRun, "dry-run", false, "Only log the notifications instead of queueing them")
	rootCmd.AddCommand(remindCmd)
}
