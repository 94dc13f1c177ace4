package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type ScheduleKind string

const (
	ScheduleMonotonic       ScheduleKind = "MONOTONIC"
	ScheduleDayOfWeek       ScheduleKind = "DAY_OF_WEEK"
	ScheduleFollowsExercise ScheduleKind = "FOLLOWS_EXERCISE"
)

type ReminderStrength string

const (
	ReminderInApp        ReminderStrength = "IN_APP"
	ReminderNotification ReminderStrength = "NOTIFICATION"
	ReminderInsistent    ReminderStrength = "INSISTENT"
)

var ErrInvalidSchedule = errors.New("invalid schedule")

// ExerciseSchedule is a recurrence policy over one exercise.
type ExerciseSchedule struct {
	ID              int64            `json:"id"`
	ExerciseID      int64            `json:"exercise_id"`
	Kind            ScheduleKind     `json:"kind"`
	MonotonicDays   *int             `json:"monotonic_days,omitempty"` // Also the offset for FOLLOWS_EXERCISE.
	DayOfWeek       *time.Weekday    `json:"day_of_week,omitempty"`
	FollowsExercise *int64           `json:"follows_exercise,omitempty"`
	Reminder        ReminderStrength `json:"reminder"`
	Enabled         bool             `json:"enabled"`
	Dismissed       bool             `json:"dismissed"`
	ShowAfter       *Day             `json:"show_after,omitempty"`
	Message         *string          `json:"message,omitempty"`
}

type ScheduleParams struct {
	ExerciseID      int64
	Kind            ScheduleKind
	MonotonicDays   *int
	DayOfWeek       *time.Weekday
	FollowsExercise *int64
	Reminder        ReminderStrength
	Message         *string
	ShowAfter       *Day
}

// NewExerciseSchedule returns an enabled schedule, or ErrInvalidSchedule when
// the field the kind depends on is missing.
func NewExerciseSchedule(p ScheduleParams) (*ExerciseSchedule, error) {
	if p.Reminder == "" {
		p.Reminder = ReminderNotification
	}
	s := &ExerciseSchedule{
		ExerciseID:      p.ExerciseID,
		Kind:            p.Kind,
		MonotonicDays:   p.MonotonicDays,
		DayOfWeek:       p.DayOfWeek,
		FollowsExercise: p.FollowsExercise,
		Reminder:        p.Reminder,
		Enabled:         true,
		ShowAfter:       p.ShowAfter,
		Message:         p.Message,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ExerciseSchedule) Validate() error {
	switch s.Kind {
	case ScheduleMonotonic:
		if s.MonotonicDays == nil {
			return fmt.Errorf("%w: %s requires monotonic days", ErrInvalidSchedule, s.Kind)
		}
	case ScheduleDayOfWeek:
		if s.DayOfWeek == nil {
			return fmt.Errorf("%w: %s requires a day of week", ErrInvalidSchedule, s.Kind)
		}
		if *s.DayOfWeek < time.Sunday || *s.DayOfWeek > time.Saturday {
			return fmt.Errorf("%w: day of week %d out of range", ErrInvalidSchedule, *s.DayOfWeek)
		}
	case ScheduleFollowsExercise:
		if s.FollowsExercise == nil {
			return fmt.Errorf("%w: %s requires the followed exercise", ErrInvalidSchedule, s.Kind)
		}
		if s.MonotonicDays == nil {
			return fmt.Errorf("%w: %s requires an offset in days", ErrInvalidSchedule, s.Kind)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidSchedule, s.Kind)
	}

	if s.MonotonicDays != nil && *s.MonotonicDays < 0 {
		return fmt.Errorf("%w: negative day count %d", ErrInvalidSchedule, *s.MonotonicDays)
	}

	switch s.Reminder {
	case ReminderInApp, ReminderNotification, ReminderInsistent:
	default:
		return fmt.Errorf("%w: unknown reminder strength %q", ErrInvalidSchedule, s.Reminder)
	}
	return nil
}

// ParseScheduleKind accepts the kind in any case, with dashes or underscores.
func ParseScheduleKind(s string) (ScheduleKind, error) {
	k := ScheduleKind(strings.ToUpper(strings.ReplaceAll(s, "-", "_")))
	switch k {
	case ScheduleMonotonic, ScheduleDayOfWeek, ScheduleFollowsExercise:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidSchedule, s)
}

func ParseReminderStrength(s string) (ReminderStrength, error) {
	r := ReminderStrength(strings.ToUpper(strings.ReplaceAll(s, "-", "_")))
	switch r {
	case ReminderInApp, ReminderNotification, ReminderInsistent:
		return r, nil
	}
	return "", fmt.Errorf("%w: unknown reminder strength %q", ErrInvalidSchedule, s)
}

// ParseWeekday accepts full or three letter English weekday names.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}
