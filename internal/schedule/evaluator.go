package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/misterclayt0n/cadence/internal/models"
	"github.com/misterclayt0n/cadence/internal/utils"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=schedule_test

// LogStore answers history questions. A missing log is (nil, nil).
type LogStore interface {
	LatestLogForExercise(ctx context.Context, exerciseID int64) (*models.ExerciseLog, error)
	LatestLogOnOrBefore(ctx context.Context, exerciseID int64, day models.Day) (*models.ExerciseLog, error)
}

type ScheduleStore interface {
	AllSchedules(ctx context.Context) ([]models.ExerciseSchedule, error)
	SchedulesForExercise(ctx context.Context, exerciseID int64) ([]models.ExerciseSchedule, error)
	UpdateSchedule(ctx context.Context, s models.ExerciseSchedule) error
	DismissSchedule(ctx context.Context, scheduleID int64) error
}

const defaultConcurrency = 4

type Evaluator struct {
	logs        LogStore
	schedules   ScheduleStore
	now         func() time.Time
	loc         *time.Location
	concurrency int

	locksMu sync.Mutex
	locks   map[int64]*sync.Mutex
}

type Option func(*Evaluator)

func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) {
		e.now = now
	}
}

// WithLocation sets the zone that decides which calendar day "today" is.
func WithLocation(loc *time.Location) Option {
	return func(e *Evaluator) {
		e.loc = loc
	}
}

// WithConcurrency bounds how many schedules NextSchedule evaluates at once.
func WithConcurrency(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

func NewEvaluator(logs LogStore, schedules ScheduleStore, opts ...Option) *Evaluator {
	e := &Evaluator{
		logs:        logs,
		schedules:   schedules,
		now:         time.Now,
		loc:         time.Local,
		concurrency: defaultConcurrency,
		locks:       make(map[int64]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) Today() models.Day {
	return utils.Today(e.now(), e.loc)
}

// IsActive reports whether the schedule's recurrence rule is due on ref.
//
// MONOTONIC stays active while ShowAfter is on or after ref, so the reminder
// covers the window up to the due date and stops once it has passed.
func (e *Evaluator) IsActive(ctx context.Context, s models.ExerciseSchedule, ref models.Day) (bool, error) {
	switch s.Kind {
	case models.ScheduleMonotonic:
		return s.ShowAfter != nil && *s.ShowAfter >= ref, nil

	case models.ScheduleDayOfWeek:
		return s.DayOfWeek != nil && ref.Weekday() == *s.DayOfWeek, nil

	case models.ScheduleFollowsExercise:
		if s.FollowsExercise == nil || s.MonotonicDays == nil {
			return false, nil
		}
		anchor, err := e.logs.LatestLogForExercise(ctx, *s.FollowsExercise)
		if err != nil {
			return false, fmt.Errorf("latest log for exercise %d: %w", *s.FollowsExercise, err)
		}
		if anchor == nil {
			return false, nil
		}
		return anchor.LogDay.AddDays(*s.MonotonicDays) <= ref, nil
	}

	return false, fmt.Errorf("%w: unknown kind %q", models.ErrInvalidSchedule, s.Kind)
}

// HasBeenFulfilled reports whether the schedule's own exercise was logged on or
// before ref. Any such log counts, whichever cycle it belongs to.
func (e *Evaluator) HasBeenFulfilled(ctx context.Context, s models.ExerciseSchedule, ref models.Day) (bool, error) {
	l, err := e.logs.LatestLogOnOrBefore(ctx, s.ExerciseID, ref)
	if err != nil {
		return false, fmt.Errorf("latest log for exercise %d: %w", s.ExerciseID, err)
	}
	return l != nil, nil
}

// NextSchedule returns the enabled, undismissed schedules that are active today
// and not yet fulfilled, in store order.
func (e *Evaluator) NextSchedule(ctx context.Context) ([]models.ExerciseSchedule, error) {
	all, err := e.schedules.AllSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("all schedules: %w", err)
	}

	today := e.Today()
	due := make([]bool, len(all))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, s := range all {
		if !s.Enabled || s.Dismissed {
			continue
		}
		i, s := i, s
		g.Go(func() error {
			ok, err := e.isDue(gctx, s, today)
			if err != nil {
				return fmt.Errorf("schedule %d: %w", s.ID, err)
			}
			due[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]models.ExerciseSchedule, 0)
	for i, s := range all {
		if due[i] {
			result = append(result, s)
		}
	}

	log.Debugf("schedule: %d of %d schedules due on %s", len(result), len(all), today)
	return result, nil
}

func (e *Evaluator) isDue(ctx context.Context, s models.ExerciseSchedule, today models.Day) (bool, error) {
	active, err := e.IsActive(ctx, s, today)
	if err != nil || !active {
		return false, err
	}
	fulfilled, err := e.HasBeenFulfilled(ctx, s, today)
	if err != nil {
		return false, err
	}
	return !fulfilled, nil
}

func (e *Evaluator) Dismiss(ctx context.Context, scheduleID int64) error {
	unlock := e.lock(scheduleID)
	defer unlock()

	if err := e.schedules.DismissSchedule(ctx, scheduleID); err != nil {
		return fmt.Errorf("dismiss schedule %d: %w", scheduleID, err)
	}
	return nil
}

// Reschedule moves every MONOTONIC schedule of the exercise to today plus its
// interval and clears its dismissal. The updated schedules are returned.
func (e *Evaluator) Reschedule(ctx context.Context, exerciseID int64) ([]models.ExerciseSchedule, error) {
	schedules, err := e.schedules.SchedulesForExercise(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("schedules for exercise %d: %w", exerciseID, err)
	}

	today := e.Today()
	updated := make([]models.ExerciseSchedule, 0)
	for _, s := range schedules {
		if s.Kind != models.ScheduleMonotonic || s.MonotonicDays == nil {
			continue
		}

		next, err := e.reschedule(ctx, s, today)
		if err != nil {
			return updated, err
		}
		updated = append(updated, next)
	}

	return updated, nil
}

func (e *Evaluator) reschedule(ctx context.Context, s models.ExerciseSchedule, today models.Day) (models.ExerciseSchedule, error) {
	unlock := e.lock(s.ID)
	defer unlock()

	showAfter := today.AddDays(*s.MonotonicDays)
	s.ShowAfter = &showAfter
	s.Dismissed = false
	if err := e.schedules.UpdateSchedule(ctx, s); err != nil {
		return s, fmt.Errorf("update schedule %d: %w", s.ID, err)
	}

	log.Debugf("schedule: %d next due %s", s.ID, showAfter)
	return s, nil
}

func (e *Evaluator) lock(scheduleID int64) func() {
	e.locksMu.Lock()
	mu, ok := e.locks[scheduleID]
	if !ok {
		mu = &sync.Mutex{}
		e.locks[scheduleID] = mu
	}
	e.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}
