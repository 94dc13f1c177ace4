package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/misterclayt0n/cadence/internal/models"
	"github.com/misterclayt0n/cadence/internal/utils"
)

const scheduleColumns = `id, exercise_id, kind, monotonic_days, day_of_week, follows_exercise, reminder, enabled, dismissed, show_after, message`

// scheduleRow mirrors an exercise_schedules row.
type scheduleRow struct {
	ID              int64
	ExerciseID      int64
	Kind            string
	MonotonicDays   sql.NullInt64
	DayOfWeek       sql.NullInt64
	FollowsExercise sql.NullInt64
	Reminder        string
	Enabled         int64
	Dismissed       int64
	ShowAfter       sql.NullInt64
	Message         sql.NullString
}

func (r *scheduleRow) scanFields() []any {
	return []any{
		&r.ID, &r.ExerciseID, &r.Kind, &r.MonotonicDays, &r.DayOfWeek, &r.FollowsExercise,
		&r.Reminder, &r.Enabled, &r.Dismissed, &r.ShowAfter, &r.Message,
	}
}

func (r scheduleRow) toModel() models.ExerciseSchedule {
	s := models.ExerciseSchedule{
		ID:         r.ID,
		ExerciseID: r.ExerciseID,
		Kind:       models.ScheduleKind(r.Kind),
		Reminder:   models.ReminderStrength(r.Reminder),
		Enabled:    utils.IntToBool(r.Enabled),
		Dismissed:  utils.IntToBool(r.Dismissed),
	}
	if r.MonotonicDays.Valid {
		days := int(r.MonotonicDays.Int64)
		s.MonotonicDays = &days
	}
	if r.DayOfWeek.Valid {
		dow := time.Weekday(r.DayOfWeek.Int64)
		s.DayOfWeek = &dow
	}
	if r.FollowsExercise.Valid {
		follows := r.FollowsExercise.Int64
		s.FollowsExercise = &follows
	}
	if r.ShowAfter.Valid {
		showAfter := models.Day(r.ShowAfter.Int64)
		s.ShowAfter = &showAfter
	}
	if r.Message.Valid {
		msg := r.Message.String
		s.Message = &msg
	}
	return s
}

func scheduleToRow(s models.ExerciseSchedule) scheduleRow {
	r := scheduleRow{
		ID:         s.ID,
		ExerciseID: s.ExerciseID,
		Kind:       string(s.Kind),
		Reminder:   string(s.Reminder),
		Enabled:    int64(utils.BoolToInt(s.Enabled)),
		Dismissed:  int64(utils.BoolToInt(s.Dismissed)),
	}
	if s.MonotonicDays != nil {
		r.MonotonicDays = sql.NullInt64{Int64: int64(*s.MonotonicDays), Valid: true}
	}
	if s.DayOfWeek != nil {
		r.DayOfWeek = sql.NullInt64{Int64: int64(*s.DayOfWeek), Valid: true}
	}
	if s.FollowsExercise != nil {
		r.FollowsExercise = sql.NullInt64{Int64: *s.FollowsExercise, Valid: true}
	}
	if s.ShowAfter != nil {
		r.ShowAfter = sql.NullInt64{Int64: int64(*s.ShowAfter), Valid: true}
	}
	if s.Message != nil {
		r.Message = sql.NullString{String: *s.Message, Valid: true}
	}
	return r
}

// InsertSchedule validates and stores a schedule, returning its id.
func (s *Storage) InsertSchedule(ctx context.Context, sch models.ExerciseSchedule) (int64, error) {
	if err := sch.Validate(); err != nil {
		return 0, err
	}

	r := scheduleToRow(sch)
	var id int64
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO exercise_schedules
			(exercise_id, kind, monotonic_days, day_of_week, follows_exercise, reminder, enabled, dismissed, show_after, message)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING id`,
		r.ExerciseID, r.Kind, r.MonotonicDays, r.DayOfWeek, r.FollowsExercise,
		r.Reminder, r.Enabled, r.Dismissed, r.ShowAfter, r.Message,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert schedule: %w", err)
	}
	return id, nil
}

// UpdateSchedule overwrites every column of the schedule.
func (s *Storage) UpdateSchedule(ctx context.Context, sch models.ExerciseSchedule) error {
	if err := sch.Validate(); err != nil {
		return err
	}

	r := scheduleToRow(sch)
	res, err := s.DB.ExecContext(ctx,
		`UPDATE exercise_schedules SET
			exercise_id = ?, kind = ?, monotonic_days = ?, day_of_week = ?, follows_exercise = ?,
			reminder = ?, enabled = ?, dismissed = ?, show_after = ?, message = ?
			WHERE id = ?`,
		r.ExerciseID, r.Kind, r.MonotonicDays, r.DayOfWeek, r.FollowsExercise,
		r.Reminder, r.Enabled, r.Dismissed, r.ShowAfter, r.Message, r.ID,
	)
	if err != nil {
		return fmt.Errorf("update schedule %d: %w", sch.ID, err)
	}
	return requireAffected(res, fmt.Sprintf("schedule %d", sch.ID))
}

func (s *Storage) DismissSchedule(ctx context.Context, scheduleID int64) error {
	res, err := s.DB.ExecContext(ctx, `UPDATE exercise_schedules SET dismissed = 1 WHERE id = ?`, scheduleID)
	if err != nil {
		return fmt.Errorf("dismiss schedule %d: %w", scheduleID, err)
	}
	return requireAffected(res, fmt.Sprintf("schedule %d", scheduleID))
}

func (s *Storage) SetScheduleEnabled(ctx context.Context, scheduleID int64, enabled bool) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE exercise_schedules SET enabled = ? WHERE id = ?`,
		utils.BoolToInt(enabled), scheduleID,
	)
	if err != nil {
		return fmt.Errorf("set schedule %d enabled: %w", scheduleID, err)
	}
	return requireAffected(res, fmt.Sprintf("schedule %d", scheduleID))
}

// DeleteSchedule removes the schedule and its queued notification.
func (s *Storage) DeleteSchedule(ctx context.Context, scheduleID int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM notification_queue WHERE schedule_id = ?`, scheduleID); err != nil {
			return fmt.Errorf("delete queued notification of schedule %d: %w", scheduleID, err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM exercise_schedules WHERE id = ?`, scheduleID)
		if err != nil {
			return fmt.Errorf("delete schedule %d: %w", scheduleID, err)
		}
		return requireAffected(res, fmt.Sprintf("schedule %d", scheduleID))
	})
}

func (s *Storage) GetSchedule(ctx context.Context, scheduleID int64) (*models.ExerciseSchedule, error) {
	var r scheduleRow
	err := s.DB.QueryRowContext(ctx,
		`SELECT `+scheduleColumns+` FROM exercise_schedules WHERE id = ?`,
		scheduleID,
	).Scan(r.scanFields()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("schedule %d: %w", scheduleID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query schedule %d: %w", scheduleID, err)
	}
	sch := r.toModel()
	return &sch, nil
}

func (s *Storage) AllSchedules(ctx context.Context) ([]models.ExerciseSchedule, error) {
	return s.querySchedules(ctx, `SELECT `+scheduleColumns+` FROM exercise_schedules ORDER BY id`)
}

// SchedulesForExercise returns the schedules that remind of the exercise.
func (s *Storage) SchedulesForExercise(ctx context.Context, exerciseID int64) ([]models.ExerciseSchedule, error) {
	return s.querySchedules(ctx,
		`SELECT `+scheduleColumns+` FROM exercise_schedules WHERE exercise_id = ? ORDER BY id`,
		exerciseID,
	)
}

func (s *Storage) querySchedules(ctx context.Context, query string, args ...any) ([]models.ExerciseSchedule, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	defer rows.Close()

	schedules := make([]models.ExerciseSchedule, 0)
	for rows.Next() {
		var r scheduleRow
		if err := rows.Scan(r.scanFields()...); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		schedules = append(schedules, r.toModel())
	}
	return schedules, rows.Err()
}
