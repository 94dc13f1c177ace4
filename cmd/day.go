package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/cadence/internal/activity"
	"github.com/misterclayt0n/cadence/internal/models"
	"github.com/spf13/cobra"
)

var dayCmd = &cobra.Command{
	Use:   "day [YYYY-MM-DD]",
	Short: "Show the activity of a day grouped by exercise and load",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		loc, err := location()
		if err != nil {
			return err
		}
		day, err := parseDayArg(args, time.Now(), loc)
		if err != nil {
			return err
		}

		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		groups, err := activity.NewService(st).Day(ctx, day)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", day, err)
		}
		note, err := st.GetNote(ctx, day)
		if err != nil {
			return fmt.Errorf("failed to load note: %w", err)
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s\n\n", green(day.Time(loc).Format("Monday, 02 Jan 2006")))
		if len(groups) == 0 {
			fmt.Println("Nothing logged.")
		}
		printGroups(groups, loc)

		if note != nil {
			fmt.Printf("\n%s %s\n", color.New(color.FgRed).Sprint("Note:"), note.Note)
		}
		return nil
	},
}

func printGroups(groups []activity.Group, loc *time.Location) {
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	var current int64 = -1
	for _, g := range groups {
		if g.Exercise.ID != current {
			current = g.Exercise.ID
			fmt.Printf("%s\n", cyan("• "+g.Exercise.Name))
		}

		line := fmt.Sprintf("   %d × %s", g.Sets(), g.MagnitudeLabel())
		if label := g.ResistanceLabel(); label != "" {
			line += " @ " + label
		}
		if orm, ok := g.EstimatedOneRM(); ok {
			line += faint(fmt.Sprintf("  (1RM ≈ %.1f kg)", orm))
		}
		if hasBanner(g) {
			line += " " + yellow("★")
		}
		fmt.Println(line)

		for _, e := range g.Logs {
			details := logDetails(e.Log)
			if details == "" {
				continue
			}
			fmt.Printf("     %s %s\n", faint(e.Log.LogTime.In(loc).Format("15:04")), details)
		}
	}
}

func hasBanner(g activity.Group) bool {
	for _, e := range g.Logs {
		if e.Log.Banner {
			return true
		}
	}
	return false
}

func logDetails(l models.ExerciseLog) string {
	var parts []string
	if l.RestSeconds != nil {
		parts = append(parts, fmt.Sprintf("rest %s", time.Duration(*l.RestSeconds)*time.Second))
	}
	if l.Comment != nil && *l.Comment != "" {
		parts = append(parts, fmt.Sprintf("%q", *l.Comment))
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(dayCmd)
}
