package models

import "time"

// Day is a calendar date stored as the number of days since 1970-01-01.
// It carries no time zone: the zone only matters when projecting a time.Time onto it.
type Day int64

const dayLayout = "2006-01-02"

// DayOf returns the calendar day of t in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	utc := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return Day(utc.Unix() / 86400)
}

// ParseDay parses a YYYY-MM-DD date.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return 0, err
	}
	return DayOf(t), nil
}

// Time returns local midnight of the day in loc.
func (d Day) Time(loc *time.Location) time.Time {
	utc := time.Unix(int64(d)*86400, 0).UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, loc)
}

func (d Day) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

func (d Day) AddDays(n int) Day {
	return d + Day(n)
}

func (d Day) String() string {
	return d.Time(time.UTC).Format(dayLayout)
}
