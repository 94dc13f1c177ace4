package schedule_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/misterclayt0n/cadence/internal/models"
	"github.com/misterclayt0n/cadence/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Wednesday.
var testNow = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

func today() models.Day {
	return models.DayOf(testNow)
}

func intPtr(i int) *int { return &i }

func dayPtr(d models.Day) *models.Day { return &d }

func newEvaluator(t *testing.T) (*schedule.Evaluator, *MockLogStore, *MockScheduleStore) {
	ctrl := gomock.NewController(t)
	logsMock := NewMockLogStore(ctrl)
	schedulesMock := NewMockScheduleStore(ctrl)
	e := schedule.NewEvaluator(
		logsMock, schedulesMock,
		schedule.WithClock(func() time.Time { return testNow }),
		schedule.WithLocation(time.UTC),
		schedule.WithConcurrency(2),
	)
	return e, logsMock, schedulesMock
}

func logOn(exerciseID int64, day models.Day) *models.ExerciseLog {
	l := models.NewExerciseLog(exerciseID, 10, day.Time(time.UTC).Add(9*time.Hour))
	return &l
}

func monotonic(id int64, showAfter *models.Day) models.ExerciseSchedule {
	return models.ExerciseSchedule{
		ID:            id,
		ExerciseID:    1,
		Kind:          models.ScheduleMonotonic,
		MonotonicDays: intPtr(3),
		Reminder:      models.ReminderNotification,
		Enabled:       true,
		ShowAfter:     showAfter,
	}
}

func TestEvaluator_Today(t *testing.T) {
	e, _, _ := newEvaluator(t)
	assert.Equal(t, "2024-05-15", e.Today().String())
}

func TestEvaluator_IsActive_Monotonic(t *testing.T) {
	e, _, _ := newEvaluator(t)
	ctx := context.Background()

	active, err := e.IsActive(ctx, monotonic(1, dayPtr(today())), today())
	require.NoError(t, err)
	assert.True(t, active)

	active, err = e.IsActive(ctx, monotonic(1, dayPtr(today().AddDays(-1))), today())
	require.NoError(t, err)
	assert.False(t, active)

	active, err = e.IsActive(ctx, monotonic(1, nil), today())
	require.NoError(t, err)
	assert.False(t, active)

	// Still inside the window before the due date.
	active, err = e.IsActive(ctx, monotonic(1, dayPtr(today().AddDays(2))), today())
	require.NoError(t, err)
	assert.True(t, active)
}

func TestEvaluator_IsActive_DayOfWeek(t *testing.T) {
	e, _, _ := newEvaluator(t)
	ctx := context.Background()

	wednesday := time.Wednesday
	s := models.ExerciseSchedule{ID: 1, ExerciseID: 1, Kind: models.ScheduleDayOfWeek, DayOfWeek: &wednesday}
	active, err := e.IsActive(ctx, s, today())
	require.NoError(t, err)
	assert.True(t, active)

	active, err = e.IsActive(ctx, s, today().AddDays(1))
	require.NoError(t, err)
	assert.False(t, active)

	active, err = e.IsActive(ctx, s, today().AddDays(7))
	require.NoError(t, err)
	assert.True(t, active)
}

func TestEvaluator_IsActive_FollowsExercise(t *testing.T) {
	e, logsMock, _ := newEvaluator(t)
	ctx := context.Background()

	target := int64(2)
	s := models.ExerciseSchedule{
		ID:              1,
		ExerciseID:      1,
		Kind:            models.ScheduleFollowsExercise,
		FollowsExercise: &target,
		MonotonicDays:   intPtr(3),
	}

	logsMock.EXPECT().LatestLogForExercise(gomock.Any(), int64(2)).Return(logOn(2, today().AddDays(-5)), nil)
	active, err := e.IsActive(ctx, s, today())
	require.NoError(t, err)
	assert.True(t, active)

	logsMock.EXPECT().LatestLogForExercise(gomock.Any(), int64(2)).Return(logOn(2, today().AddDays(-1)), nil)
	active, err = e.IsActive(ctx, s, today())
	require.NoError(t, err)
	assert.False(t, active)

	logsMock.EXPECT().LatestLogForExercise(gomock.Any(), int64(2)).Return(logOn(2, today().AddDays(-3)), nil)
	active, err = e.IsActive(ctx, s, today())
	require.NoError(t, err)
	assert.True(t, active)

	logsMock.EXPECT().LatestLogForExercise(gomock.Any(), int64(2)).Return(nil, nil)
	active, err = e.IsActive(ctx, s, today())
	require.NoError(t, err)
	assert.False(t, active)

	logsMock.EXPECT().LatestLogForExercise(gomock.Any(), int64(2)).Return(nil, errors.New("db gone"))
	active, err = e.IsActive(ctx, s, today())
	require.Error(t, err)
	assert.False(t, active)
}

func TestEvaluator_HasBeenFulfilled(t *testing.T) {
	e, logsMock, _ := newEvaluator(t)
	ctx := context.Background()
	s := monotonic(1, dayPtr(today()))

	logsMock.EXPECT().LatestLogOnOrBefore(gomock.Any(), int64(1), today()).Return(logOn(1, today().AddDays(-1)), nil)
	fulfilled, err := e.HasBeenFulfilled(ctx, s, today())
	require.NoError(t, err)
	assert.True(t, fulfilled)

	logsMock.EXPECT().LatestLogOnOrBefore(gomock.Any(), int64(1), today()).Return(nil, nil)
	fulfilled, err = e.HasBeenFulfilled(ctx, s, today())
	require.NoError(t, err)
	assert.False(t, fulfilled)
}

func TestEvaluator_NextSchedule(t *testing.T) {
	e, logsMock, schedulesMock := newEvaluator(t)

	wednesday := time.Wednesday
	monday := time.Monday

	due := monotonic(1, dayPtr(today()))
	due.ExerciseID = 10
	expired := monotonic(2, dayPtr(today().AddDays(-1)))
	disabled := monotonic(3, dayPtr(today()))
	disabled.Enabled = false
	dismissed := monotonic(4, dayPtr(today()))
	dismissed.Dismissed = true
	fulfilledWeekly := models.ExerciseSchedule{ID: 5, ExerciseID: 11, Kind: models.ScheduleDayOfWeek, DayOfWeek: &wednesday, Enabled: true}
	otherDay := models.ExerciseSchedule{ID: 6, ExerciseID: 12, Kind: models.ScheduleDayOfWeek, DayOfWeek: &monday, Enabled: true}
	dueWeekly := models.ExerciseSchedule{ID: 7, ExerciseID: 13, Kind: models.ScheduleDayOfWeek, DayOfWeek: &wednesday, Enabled: true}

	schedulesMock.EXPECT().AllSchedules(gomock.Any()).Return([]models.ExerciseSchedule{
		due, expired, disabled, dismissed, fulfilledWeekly, otherDay, dueWeekly,
	}, nil)
	logsMock.EXPECT().LatestLogOnOrBefore(gomock.Any(), int64(10), today()).Return(nil, nil)
	logsMock.EXPECT().LatestLogOnOrBefore(gomock.Any(), int64(11), today()).Return(logOn(11, today().AddDays(-30)), nil)
	logsMock.EXPECT().LatestLogOnOrBefore(gomock.Any(), int64(13), today()).Return(nil, nil)

	next, err := e.NextSchedule(context.Background())
	require.NoError(t, err)
	require.Len(t, next, 2)
	assert.Equal(t, int64(1), next[0].ID)
	assert.Equal(t, int64(7), next[1].ID)
}

func TestEvaluator_NextSchedule_Empty(t *testing.T) {
	e, _, schedulesMock := newEvaluator(t)

	schedulesMock.EXPECT().AllSchedules(gomock.Any()).Return(nil, nil)
	next, err := e.NextSchedule(context.Background())
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Empty(t, next)
}

func TestEvaluator_NextSchedule_StoreErrors(t *testing.T) {
	e, logsMock, schedulesMock := newEvaluator(t)
	ctx := context.Background()

	schedulesMock.EXPECT().AllSchedules(gomock.Any()).Return(nil, errors.New("locked"))
	next, err := e.NextSchedule(ctx)
	require.Error(t, err)
	assert.Nil(t, next)

	schedulesMock.EXPECT().AllSchedules(gomock.Any()).Return([]models.ExerciseSchedule{monotonic(1, dayPtr(today()))}, nil)
	logsMock.EXPECT().LatestLogOnOrBefore(gomock.Any(), int64(1), today()).Return(nil, errors.New("io error"))
	next, err = e.NextSchedule(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule 1")
	assert.Nil(t, next)
}

func TestEvaluator_Dismiss(t *testing.T) {
	e, _, schedulesMock := newEvaluator(t)
	ctx := context.Background()

	schedulesMock.EXPECT().DismissSchedule(gomock.Any(), int64(4)).Return(nil).Times(2)
	require.NoError(t, e.Dismiss(ctx, 4))
	require.NoError(t, e.Dismiss(ctx, 4))

	schedulesMock.EXPECT().DismissSchedule(gomock.Any(), int64(5)).Return(errors.New("nope"))
	require.Error(t, e.Dismiss(ctx, 5))
}

func TestEvaluator_Reschedule(t *testing.T) {
	e, _, schedulesMock := newEvaluator(t)

	stale := monotonic(1, dayPtr(today().AddDays(-10)))
	stale.Dismissed = true
	wednesday := time.Wednesday
	weekly := models.ExerciseSchedule{ID: 2, ExerciseID: 1, Kind: models.ScheduleDayOfWeek, DayOfWeek: &wednesday, Enabled: true}

	schedulesMock.EXPECT().SchedulesForExercise(gomock.Any(), int64(1)).Return([]models.ExerciseSchedule{stale, weekly}, nil)

	var written models.ExerciseSchedule
	schedulesMock.EXPECT().UpdateSchedule(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.ExerciseSchedule) error {
			written = s
			return nil
		},
	)

	updated, err := e.Reschedule(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, updated, 1)

	assert.Equal(t, int64(1), written.ID)
	require.NotNil(t, written.ShowAfter)
	assert.Equal(t, today().AddDays(3), *written.ShowAfter)
	assert.False(t, written.Dismissed)
	assert.Equal(t, written, updated[0])

	// The caller's copy is not touched.
	assert.True(t, stale.Dismissed)
}

func TestEvaluator_Reschedule_NoSchedules(t *testing.T) {
	e, _, schedulesMock := newEvaluator(t)

	schedulesMock.EXPECT().SchedulesForExercise(gomock.Any(), int64(3)).Return(nil, nil)
	updated, err := e.Reschedule(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, updated)
}

func TestEvaluator_Reschedule_UpdateError(t *testing.T) {
	e, _, schedulesMock := newEvaluator(t)

	schedulesMock.EXPECT().SchedulesForExercise(gomock.Any(), int64(1)).Return([]models.ExerciseSchedule{monotonic(1, nil)}, nil)
	schedulesMock.EXPECT().UpdateSchedule(gomock.Any(), gomock.Any()).Return(errors.New("readonly"))

	_, err := e.Reschedule(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "readonly")
}

func TestEvaluator_Reschedule_Concurrent(t *testing.T) {
	e, _, schedulesMock := newEvaluator(t)

	schedulesMock.EXPECT().SchedulesForExercise(gomock.Any(), int64(1)).
		Return([]models.ExerciseSchedule{monotonic(1, nil)}, nil).Times(8)

	var mu sync.Mutex
	inFlight := 0
	maxInFlight := 0
	schedulesMock.EXPECT().UpdateSchedule(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.ExerciseSchedule) error {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return nil
		},
	).Times(8)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.Reschedule(context.Background(), 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInFlight)
}
