package utils

import (
	"time"

	"github.com/misterclayt0n/cadence/internal/models"
)

// LoadLocation resolves a configured zone name. Empty and "Local" both mean the machine zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// Today returns the calendar day of now in loc.
func Today(now time.Time, loc *time.Location) models.Day {
	return models.DayOf(now.In(loc))
}

// UntilDay returns how long from now until midnight of day in loc. Past days give zero.
func UntilDay(now time.Time, day models.Day, loc *time.Location) time.Duration {
	d := day.Time(loc).Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// FormatLocal returns t in loc formatted for terminal output.
func FormatLocal(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Mon, 02 Jan 2006 15:04")
}
