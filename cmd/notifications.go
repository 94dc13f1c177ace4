package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/cadence/internal/utils"
	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List queued notification requests, soonest first",
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

		pending, err := st.PendingNotifications(ctx)
		if err != nil {
			return fmt.Errorf("failed to read notification queue: %w", err)
		}
		if len(pending) == 0 {
			fmt.Println("No queued notifications.")
			return nil
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		for _, req := range pending {
			fmt.Printf("%s  %s  %s  %s\n",
				cyan(utils.FormatLocal(req.FireAt(), loc)),
				yellow(req.Strength),
				req.Message,
				color.New(color.Faint).Sprintf("(schedule #%d, %s)", req.ScheduleID, req.ID),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notificationsCmd)
}
