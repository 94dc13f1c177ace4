package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/cadence/internal/models"
	"github.com/misterclayt0n/cadence/internal/storage"
	"github.com/misterclayt0n/cadence/internal/utils"
	"github.com/spf13/cobra"
)

var (
	scheduleKind      string
	scheduleDays      int
	scheduleWeekday   string
	scheduleFollows   string
	scheduleReminder  string
	scheduleMessage   string
	scheduleShowAfter string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage recurring exercise reminders",
}

var addScheduleCmd = &cobra.Command{
	Use:   "add [exercise]",
	Short: "Add a schedule: monotonic (--days), day-of-week (--weekday) or follows-exercise (--follows, --days)",
	Args:  cobra.ExactArgs(1),
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

		ex, err := exerciseByName(ctx, st, args[0])
		if err != nil {
			return err
		}

		kind, err := models.ParseScheduleKind(scheduleKind)
		if err != nil {
			return err
		}
		reminder, err := models.ParseReminderStrength(scheduleReminder)
		if err != nil {
			return err
		}

		params := models.ScheduleParams{
			ExerciseID: ex.ID,
			Kind:       kind,
			Reminder:   reminder,
		}
		if cmd.Flags().Changed("days") {
			params.MonotonicDays = &scheduleDays
		}
		if scheduleWeekday != "" {
			wd, err := models.ParseWeekday(scheduleWeekday)
			if err != nil {
				return err
			}
			params.DayOfWeek = &wd
		}
		if scheduleFollows != "" {
			followed, err := exerciseByName(ctx, st, scheduleFollows)
			if err != nil {
				return err
			}
			params.FollowsExercise = &followed.ID
		}
		if scheduleMessage != "" {
			params.Message = &scheduleMessage
		}
		if scheduleShowAfter != "" {
			day, err := models.ParseDay(scheduleShowAfter)
			if err != nil {
				return fmt.Errorf("invalid --show-after %q, expected YYYY-MM-DD", scheduleShowAfter)
			}
			params.ShowAfter = &day
		} else if kind == models.ScheduleMonotonic {
			today := utils.Today(time.Now(), loc)
			params.ShowAfter = &today
		}

		s, err := models.NewExerciseSchedule(params)
		if err != nil {
			return err
		}
		id, err := st.InsertSchedule(ctx, *s)
		if err != nil {
			return fmt.Errorf("failed to add schedule: %w", err)
		}

		fmt.Printf("✅ Added schedule #%d for %s\n", id, ex.Name)
		return nil
	},
}

var listSchedulesCmd = &cobra.Command{
	Use:   "list",
	Short: "List schedules and whether they are due today",
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

		schedules, err := st.AllSchedules(ctx)
		if err != nil {
			return fmt.Errorf("failed to list schedules: %w", err)
		}
		if len(schedules) == 0 {
			fmt.Println("No schedules.")
			return nil
		}

		names, err := exerciseNames(ctx, st)
		if err != nil {
			return err
		}

		e := newEvaluator(st, loc)
		due, err := e.NextSchedule(ctx)
		if err != nil {
			return fmt.Errorf("failed to evaluate schedules: %w", err)
		}
		dueIDs := make(map[int64]bool, len(due))
		for _, s := range due {
			dueIDs[s.ID] = true
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		for _, s := range schedules {
			var status string
			switch {
			case !s.Enabled:
				status = faint("disabled")
			case s.Dismissed:
				status = faint("dismissed")
			case dueIDs[s.ID]:
				status = red("due")
			default:
				status = green("ok")
			}
			fmt.Printf("%3d  %-10s %s  %s  [%s]\n", s.ID, status, cyan(names[s.ExerciseID]), describeSchedule(s, names), s.Reminder)
		}
		return nil
	},
}

var dismissScheduleCmd = &cobra.Command{
	Use:   "dismiss [schedule-id]",
	Short: "Hide a schedule until its exercise is logged again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSchedule(cmd, args[0], func(ctx context.Context, st *storage.Storage, loc *time.Location, s *models.ExerciseSchedule, label string) error {
			if err := newEvaluator(st, loc).Dismiss(ctx, s.ID); err != nil {
				return err
			}
			fmt.Printf("✅ Dismissed %s\n", label)
			return nil
		})
	},
}

var enableScheduleCmd = &cobra.Command{
	Use:   "enable [schedule-id]",
	Short: "Enable a schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSchedule(cmd, args[0], func(ctx context.Context, st *storage.Storage, _ *time.Location, s *models.ExerciseSchedule, label string) error {
			if s.Enabled {
				fmt.Printf("%s is already enabled\n", label)
				return nil
			}
			if err := st.SetScheduleEnabled(ctx, s.ID, true); err != nil {
				return err
			}
			fmt.Printf("✅ Enabled %s\n", label)
			return nil
		})
	},
}

var disableScheduleCmd = &cobra.Command{
	Use:   "disable [schedule-id]",
	Short: "Disable a schedule and cancel its pending notification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSchedule(cmd, args[0], func(ctx context.Context, st *storage.Storage, loc *time.Location, s *models.ExerciseSchedule, label string) error {
			if err := st.SetScheduleEnabled(ctx, s.ID, false); err != nil {
				return err
			}
			if err := newCoordinator(st, loc, st).Cancel(ctx, s.ID); err != nil {
				return err
			}
			fmt.Printf("✅ Disabled %s\n", label)
			return nil
		})
	},
}

var deleteScheduleCmd = &cobra.Command{
	Use:   "delete [schedule-id]",
	Short: "Delete a schedule and cancel its pending notification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSchedule(cmd, args[0], func(ctx context.Context, st *storage.Storage, loc *time.Location, s *models.ExerciseSchedule, label string) error {
			if err := newCoordinator(st, loc, st).Cancel(ctx, s.ID); err != nil {
				return err
			}
			if err := st.DeleteSchedule(ctx, s.ID); err != nil {
				return err
			}
			fmt.Printf("✅ Deleted %s\n", label)
			return nil
		})
	},
}

// withSchedule parses the id, opens the store and loads the schedule, mapping
// ErrNotFound to a readable message.
func withSchedule(cmd *cobra.Command, arg string, fn func(ctx context.Context, st *storage.Storage, loc *time.Location, s *models.ExerciseSchedule, label string) error) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid schedule id %q", arg)
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

	s, err := st.GetSchedule(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("schedule #%d not found", id)
	}
	if err != nil {
		return err
	}
	names, err := exerciseNames(ctx, st)
	if err != nil {
		return err
	}

	err = fn(ctx, st, loc, s, scheduleLabel(*s, names))
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("schedule #%d not found", id)
	}
	return err
}

// scheduleLabel names a schedule for one-line messages, e.g. "schedule #3 (Squat, every 2 days)".
func scheduleLabel(s models.ExerciseSchedule, names map[int64]string) string {
	name, ok := names[s.ExerciseID]
	if !ok {
		name = fmt.Sprintf("exercise #%d", s.ExerciseID)
	}
	return fmt.Sprintf("schedule #%d (%s, %s)", s.ID, name, describeSchedule(s, names))
}

func exerciseByName(ctx context.Context, st *storage.Storage, name string) (*models.Exercise, error) {
	ex, err := st.GetExerciseByName(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("exercise %q not found", name)
	}
	return ex, err
}

func exerciseNames(ctx context.Context, st *storage.Storage) (map[int64]string, error) {
	exercises, err := st.AllExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read exercises: %w", err)
	}
	names := make(map[int64]string, len(exercises))
	for _, ex := range exercises {
		names[ex.ID] = ex.Name
	}
	return names, nil
}

func describeSchedule(s models.ExerciseSchedule, names map[int64]string) string {
	switch s.Kind {
	case models.ScheduleMonotonic:
		desc := fmt.Sprintf("every %d days", *s.MonotonicDays)
		if s.ShowAfter != nil {
			desc += fmt.Sprintf(", due until %s", *s.ShowAfter)
		}
		return desc
	case models.ScheduleDayOfWeek:
		return "every " + s.DayOfWeek.String()
	case models.ScheduleFollowsExercise:
		name, ok := names[*s.FollowsExercise]
		if !ok {
			name = fmt.Sprintf("exercise #%d", *s.FollowsExercise)
		}
		return fmt.Sprintf("%d days after %s", *s.MonotonicDays, name)
	}
	return string(s.Kind)
}

func init() {
	addScheduleCmd.Flags().StringVarP(&scheduleKind, "kind", "k", string(models.ScheduleMonotonic), "monotonic, day-of-week or follows-exercise")
	addScheduleCmd.Flags().IntVarP(&scheduleDays, "days", "d", 0, "Interval in days (monotonic) or offset after the followed exercise")
	addScheduleCmd.Flags().StringVarP(&scheduleWeekday, "weekday", "w", "", "Weekday for day-of-week schedules, e.g. mon")
	addScheduleCmd.Flags().StringVarP(&scheduleFollows, "follows", "f", "", "Exercise this schedule follows")
	addScheduleCmd.Flags().StringVarP(&scheduleReminder, "reminder", "r", string(models.ReminderNotification), "in-app, notification or insistent")
	addScheduleCmd.Flags().StringVarP(&scheduleMessage, "message", "m", "", "Custom reminder message")
	addScheduleCmd.Flags().StringVar(&scheduleShowAfter, "show-after", "", "First due date for monotonic schedules (YYYY-MM-DD); defaults to today")

	scheduleCmd.AddCommand(addScheduleCmd)
	scheduleCmd.AddCommand(listSchedulesCmd)
	scheduleCmd.AddCommand(dismissScheduleCmd)
	scheduleCmd.AddCommand(enableScheduleCmd)
	scheduleCmd.AddCommand(disableScheduleCmd)
	scheduleCmd.AddCommand(deleteScheduleCmd)

	rootCmd.AddCommand(scheduleCmd)
}
