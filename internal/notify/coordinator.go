package notify

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/misterclayt0n/cadence/internal/models"
	"github.com/misterclayt0n/cadence/internal/utils"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=notify_test

const DefaultMessage = "Time to do %s"

// Dispatcher hands reminders to whatever shows them to the user.
type Dispatcher interface {
	ScheduleNotification(ctx context.Context, req models.NotificationRequest) error
	CancelNotification(ctx context.Context, scheduleID int64) error
}

type scheduleEvaluator interface {
	NextSchedule(ctx context.Context) ([]models.ExerciseSchedule, error)
	Reschedule(ctx context.Context, exerciseID int64) ([]models.ExerciseSchedule, error)
}

type exerciseCatalog interface {
	AllExercises(ctx context.Context) ([]models.Exercise, error)
}

// Reminder is a due schedule ready to be shown.
type Reminder struct {
	Schedule models.ExerciseSchedule
	Exercise *models.Exercise // nil when the exercise could not be resolved.
	Message  string
}

type Coordinator struct {
	evaluator  scheduleEvaluator
	catalog    exerciseCatalog
	dispatcher Dispatcher
	now        func() time.Time
	loc        *time.Location
	message    string
}

type Option func(*Coordinator)

func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

func WithLocation(loc *time.Location) Option {
	return func(c *Coordinator) {
		c.loc = loc
	}
}

// WithDefaultMessage sets the template used when a schedule has no message.
// A %s in it is replaced by the exercise name.
func WithDefaultMessage(msg string) Option {
	return func(c *Coordinator) {
		if msg != "" {
			c.message = msg
		}
	}
}

func NewCoordinator(evaluator scheduleEvaluator, catalog exerciseCatalog, dispatcher Dispatcher, opts ...Option) *Coordinator {
	c := &Coordinator{
		evaluator:  evaluator,
		catalog:    catalog,
		dispatcher: dispatcher,
		now:        time.Now,
		loc:        time.Local,
		message:    DefaultMessage,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dispatch finds the due reminders and sends every one above in-app strength to
// the dispatcher. In-app reminders are only returned. A failed send does not stop
// the others; the failures are returned together with the full reminder list.
func (c *Coordinator) Dispatch(ctx context.Context) ([]Reminder, error) {
	due, err := c.evaluator.NextSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("next schedule: %w", err)
	}
	if len(due) == 0 {
		return []Reminder{}, nil
	}

	exercises := c.exercises(ctx)

	var errs error
	reminders := make([]Reminder, 0, len(due))
	for _, s := range due {
		r := c.reminder(s, exercises)
		reminders = append(reminders, r)

		if s.Reminder == models.ReminderInApp {
			log.Debugf("notify: schedule %d is in-app only", s.ID)
			continue
		}
		if err := c.dispatcher.ScheduleNotification(ctx, c.request(r, 0)); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("schedule %d: %w", s.ID, err))
		}
	}

	return reminders, errs
}

// ActivityLogged reschedules the exercise's schedules and queues a notification
// for the next due date of each rescheduled one.
func (c *Coordinator) ActivityLogged(ctx context.Context, exerciseID int64) ([]models.ExerciseSchedule, error) {
	updated, err := c.evaluator.Reschedule(ctx, exerciseID)
	if err != nil {
		return updated, fmt.Errorf("reschedule exercise %d: %w", exerciseID, err)
	}
	if len(updated) == 0 {
		return updated, nil
	}

	exercises := c.exercises(ctx)
	now := c.now()

	var errs error
	for _, s := range updated {
		if !s.Enabled || s.Reminder == models.ReminderInApp || s.ShowAfter == nil {
			continue
		}
		delay := utils.UntilDay(now, *s.ShowAfter, c.loc)
		if err := c.dispatcher.ScheduleNotification(ctx, c.request(c.reminder(s, exercises), delay)); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("schedule %d: %w", s.ID, err))
		}
	}

	return updated, errs
}

// Cancel withdraws any pending notification of a deleted or disabled schedule.
func (c *Coordinator) Cancel(ctx context.Context, scheduleID int64) error {
	if err := c.dispatcher.CancelNotification(ctx, scheduleID); err != nil {
		return fmt.Errorf("cancel schedule %d: %w", scheduleID, err)
	}
	return nil
}

func (c *Coordinator) exercises(ctx context.Context) map[int64]models.Exercise {
	all, err := c.catalog.AllExercises(ctx)
	if err != nil {
		log.Warnf("notify: exercise catalog unavailable, using ids: %s", err)
		return nil
	}

	byID := make(map[int64]models.Exercise, len(all))
	for _, ex := range all {
		byID[ex.ID] = ex
	}
	return byID
}

func (c *Coordinator) reminder(s models.ExerciseSchedule, exercises map[int64]models.Exercise) Reminder {
	r := Reminder{Schedule: s}

	name := "exercise #" + strconv.FormatInt(s.ExerciseID, 10)
	if ex, ok := exercises[s.ExerciseID]; ok {
		r.Exercise = &ex
		name = ex.Name
	}

	switch {
	case s.Message != nil && *s.Message != "":
		r.Message = *s.Message
	case strings.Contains(c.message, "%s"):
		r.Message = fmt.Sprintf(c.message, name)
	default:
		r.Message = c.message
	}
	return r
}

func (c *Coordinator) request(r Reminder, delay time.Duration) models.NotificationRequest {
	return models.NotificationRequest{
		ID:         uuid.New(),
		ScheduleID: r.Schedule.ID,
		ExerciseID: r.Schedule.ExerciseID,
		Message:    r.Message,
		Strength:   r.Schedule.Reminder,
		FireDelay:  delay,
		CreatedAt:  c.now(),
	}
}
