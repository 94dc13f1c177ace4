package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/cadence/internal/activity"
	"github.com/misterclayt0n/cadence/internal/models"
	"github.com/spf13/cobra"
)

// details is a flag to print the grouped activity of every logged day.
var details bool

// calendarCmd prints the month grid. Logged days are marked with a star and
// colored by how many logs they hold.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of the days with logged activity",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		loc, err := location()
		if err != nil {
			return err
		}

		now := time.Now().In(loc)
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
		first := models.DayOf(firstOfMonth)

		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		counts, err := st.LogDays(ctx, first, models.DayOf(lastOfMonth))
		if err != nil {
			return fmt.Errorf("failed to get logged days: %w", err)
		}

		light := color.New(color.FgGreen).SprintFunc()
		heavy := color.New(color.FgGreen, color.Bold).SprintFunc()

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if n := counts[first.AddDays(day-1)]; n > 0 {
				if n >= 10 {
					dayStr = heavy(dayStr + "*")
				} else {
					dayStr = light(dayStr + "*")
				}
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		fmt.Printf("Legend: %s fewer than 10 logs, %s 10 or more\n", light("*"), heavy("*"))

		if details {
			days := make([]models.Day, 0, len(counts))
			for d := range counts {
				days = append(days, d)
			}
			sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

			svc := activity.NewService(st)
			for _, d := range days {
				groups, err := svc.Day(ctx, d)
				if err != nil {
					return fmt.Errorf("failed to load %s: %w", d, err)
				}
				fmt.Printf("\n%s:\n", d.Time(loc).Format("Mon, 02 Jan 2006"))
				printGroups(groups, loc)
			}
		}

		return nil
	},
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print the activity of every logged day")
}
