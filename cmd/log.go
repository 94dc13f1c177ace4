package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/misterclayt0n/cadence/internal/models"
	"github.com/misterclayt0n/cadence/internal/storage"
	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"
)

var (
	logResistances []string
	logRest        int
	logComment     string
	logBanner      bool
	logAt          string
)

var logCmd = &cobra.Command{
	Use:   "log [exercise] [magnitude]",
	Short: "Log one performance of an exercise and reschedule its reminders",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		magnitude, err := strconv.Atoi(args[1])
		if err != nil || magnitude < 0 {
			return fmt.Errorf("invalid magnitude %q. Must be a non-negative integer", args[1])
		}

		loc, err := location()
		if err != nil {
			return err
		}
		at, err := parseLogTime(logAt, time.Now(), loc)
		if err != nil {
			return err
		}

		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		ex, err := st.GetExerciseByName(ctx, args[0])
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("exercise %q not found", args[0])
		}
		if err != nil {
			return err
		}

		allowed, err := st.ResistancesForExercise(ctx, ex.ID)
		if err != nil {
			return fmt.Errorf("failed to read resistances of %s: %w", ex.Name, err)
		}
		values, err := parseResistanceFlags(logResistances)
		if err != nil {
			return err
		}
		resistances := make([]models.ActivityResistance, 0, len(values))
		for _, v := range values {
			r := findResistance(allowed, v.name)
			if r == nil {
				return fmt.Errorf("resistance %q is not valid for %s", v.name, ex.Name)
			}
			resistances = append(resistances, models.ActivityResistance{ResistanceID: r.ID, Value: v.value})
		}

		l := models.NewExerciseLog(ex.ID, magnitude, at)
		l.Banner = logBanner
		if cmd.Flags().Changed("rest") {
			if logRest < 0 {
				return fmt.Errorf("rest cannot be negative")
			}
			l.RestSeconds = &logRest
		}
		if strings.TrimSpace(logComment) != "" {
			l.Comment = &logComment
		}

		id, err := st.InsertLog(ctx, l, resistances)
		if err != nil {
			return fmt.Errorf("failed to log %s: %w", ex.Name, err)
		}
		fmt.Printf("✅ Logged %s: %d (log #%d, %s)\n", ex.Name, magnitude, id, l.LogDay)

		updated, err := newCoordinator(st, loc, st).ActivityLogged(ctx, ex.ID)
		if err != nil {
			log.Warnf("log: rescheduling after %s: %s", ex.Name, err)
		}
		for _, s := range updated {
			fmt.Printf("   ⏰ schedule #%d next due %s\n", s.ID, *s.ShowAfter)
		}
		return nil
	},
}

var deleteLogCmd = &cobra.Command{
	Use:   "delete-log [log-id...]",
	Short: "Delete logs together with their resistance values",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int64, 0, len(args))
		for _, a := range args {
			id, err := strconv.ParseInt(a, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid log id %q", a)
			}
			ids = append(ids, id)
		}

		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.DeleteLogs(cmd.Context(), ids)
		if err != nil {
			return fmt.Errorf("failed to delete logs: %w", err)
		}
		fmt.Printf("✅ Deleted %d of %d logs\n", n, len(ids))
		return nil
	},
}

type resistanceValue struct {
	name  string
	value int
}

// parseResistanceFlags reads name=value pairs such as "weight=80".
func parseResistanceFlags(flags []string) ([]resistanceValue, error) {
	values := make([]resistanceValue, 0, len(flags))
	seen := make(map[string]bool, len(flags))
	for _, f := range flags {
		name, raw, ok := strings.Cut(f, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid resistance %q, expected name=value", f)
		}
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid value for resistance %s: %q", name, raw)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("resistance %s given twice", name)
		}
		seen[key] = true
		values = append(values, resistanceValue{name: name, value: value})
	}
	return values, nil
}

// parseLogTime reads --at as RFC 3339, "YYYY-MM-DD HH:MM" or "YYYY-MM-DD" in loc.
// Empty means now.
func parseLogTime(s string, now time.Time, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now.In(loc), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q, expected YYYY-MM-DD [HH:MM]", s)
}

func init() {
	logCmd.Flags().StringArrayVarP(&logResistances, "resistance", "r", nil, "Resistance value as name=value, e.g. weight=80 (repeatable)")
	logCmd.Flags().IntVar(&logRest, "rest", 0, "Rest before this set, in seconds")
	logCmd.Flags().StringVarP(&logComment, "comment", "c", "", "Comment for this log")
	logCmd.Flags().BoolVarP(&logBanner, "banner", "b", false, "Highlight this log in the day view")
	logCmd.Flags().StringVar(&logAt, "at", "", "When it was done (YYYY-MM-DD [HH:MM]); defaults to now")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(deleteLogCmd)
}
