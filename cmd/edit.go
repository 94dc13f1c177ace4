package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/misterclayt0n/cadence/internal/models"
	"github.com/misterclayt0n/cadence/internal/storage"
	"github.com/spf13/cobra"
)

var (
	editMagnitude int
	editRest      int
	editComment   string
	editBanner    bool
	editAt        string
)

var editLogCmd = &cobra.Command{
	Use:   "edit-log [log-id]",
	Short: "Edit the magnitude, rest, comment, banner or time of a log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid log id %q", args[0])
		}
		loc, err := location()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		l, err := st.GetLog(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("log #%d not found", id)
		}
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("magnitude") {
			if editMagnitude < 0 {
				return fmt.Errorf("magnitude cannot be negative")
			}
			l.Magnitude = editMagnitude
		}
		if flags.Changed("rest") {
			if editRest < 0 {
				l.RestSeconds = nil
			} else {
				l.RestSeconds = &editRest
			}
		}
		if flags.Changed("comment") {
			if editComment == "" {
				l.Comment = nil
			} else {
				l.Comment = &editComment
			}
		}
		if flags.Changed("banner") {
			l.Banner = editBanner
		}
		if flags.Changed("at") {
			at, err := parseLogTime(editAt, l.LogTime, loc)
			if err != nil {
				return err
			}
			moveLog(l, at)
		}

		if err := st.UpdateLog(ctx, *l); err != nil {
			return fmt.Errorf("failed to update log: %w", err)
		}

		fmt.Printf("✅ Log #%d updated\n", id)
		return nil
	},
}

func init() {
	editLogCmd.Flags().IntVarP(&editMagnitude, "magnitude", "m", 0, "New magnitude")
	editLogCmd.Flags().IntVar(&editRest, "rest", 0, "Rest in seconds; negative clears it")
	editLogCmd.Flags().StringVarP(&editComment, "comment", "c", "", "Comment; empty clears it")
	editLogCmd.Flags().BoolVarP(&editBanner, "banner", "b", false, "Highlight the log in the day view")
	editLogCmd.Flags().StringVar(&editAt, "at", "", "New time (YYYY-MM-DD [HH:MM])")
	rootCmd.AddCommand(editLogCmd)
}

// moveLog sets the log's time and its day, taken in at's location.
func moveLog(l *models.ExerciseLog, at time.Time) {
	l.LogTime = at
	l.LogDay = models.DayOf(at)
}
