package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/cadence/internal/utils"
	"github.com/spf13/cobra"
)

var showExCmd = &cobra.Command{
	Use:   "show [exercise-name]",
	Short: "Display an exercise with its last log and schedules",
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
		resistances, err := st.ResistancesForExercise(ctx, ex.ID)
		if err != nil {
			return fmt.Errorf("failed to read resistances: %w", err)
		}
		last, err := st.LatestLogForExercise(ctx, ex.ID)
		if err != nil {
			return fmt.Errorf("failed to read last log: %w", err)
		}
		schedules, err := st.SchedulesForExercise(ctx, ex.ID)
		if err != nil {
			return fmt.Errorf("failed to read schedules: %w", err)
		}
		names, err := exerciseNames(ctx, st)
		if err != nil {
			return err
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()

		fmt.Println(boldGreen("Exercise Information:"))
		fmt.Printf("  %s: %s\n", boldCyan("Name"), ex.Name)
		if ex.Description != "" {
			fmt.Printf("  %s: %s\n", boldCyan("Description"), ex.Description)
		}
		if len(resistances) > 0 {
			parts := make([]string, 0, len(resistances))
			for _, r := range resistances {
				parts = append(parts, fmt.Sprintf("%s (%s)", r.Name, r.Unit))
			}
			fmt.Printf("  %s: %s\n", boldCyan("Resistances"), strings.Join(parts, ", "))
		}
		if last != nil {
			fmt.Printf("  %s: %d on %s (log #%d)\n", boldCyan("Last log"), last.Magnitude, utils.FormatLocal(last.LogTime, loc), last.ID)
		} else {
			fmt.Printf("  %s: never\n", boldCyan("Last log"))
		}

		if len(schedules) > 0 {
			fmt.Println()
			fmt.Println(boldGreen("Schedules:"))
			for _, s := range schedules {
				state := ""
				if !s.Enabled {
					state = " (disabled)"
				} else if s.Dismissed {
					state = " (dismissed)"
				}
				fmt.Printf("  #%d %s [%s]%s\n", s.ID, describeSchedule(s, names), s.Reminder, state)
			}
		}
		return nil
	},
}

func init() {
	exerciseCmd.AddCommand(showExCmd)
}
