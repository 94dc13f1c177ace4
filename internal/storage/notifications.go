package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/cadence/internal/models"
)

// ScheduleNotification queues a request. A schedule has at most one queued
// request; a newer one replaces it.
func (s *Storage) ScheduleNotification(ctx context.Context, req models.NotificationRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO notification_queue
			(schedule_id, id, exercise_id, message, strength, fire_delay_ms, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(schedule_id) DO UPDATE SET
				id = excluded.id,
				exercise_id = excluded.exercise_id,
				message = excluded.message,
				strength = excluded.strength,
				fire_delay_ms = excluded.fire_delay_ms,
				created_at = excluded.created_at`,
		req.ScheduleID,
		req.ID.String(),
		req.ExerciseID,
		req.Message,
		string(req.Strength),
		req.FireDelay.Milliseconds(),
		req.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("queue notification for schedule %d: %w", req.ScheduleID, err)
	}
	return nil
}

func (s *Storage) CancelNotification(ctx context.Context, scheduleID int64) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM notification_queue WHERE schedule_id = ?`, scheduleID); err != nil {
		return fmt.Errorf("cancel notification for schedule %d: %w", scheduleID, err)
	}
	return nil
}

// PendingNotifications returns the queued requests, soonest first.
func (s *Storage) PendingNotifications(ctx context.Context) ([]models.NotificationRequest, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, schedule_id, exercise_id, message, strength, fire_delay_ms, created_at
		FROM notification_queue
		ORDER BY schedule_id`)
	if err != nil {
		return nil, fmt.Errorf("query notification queue: %w", err)
	}
	defer rows.Close()

	requests := make([]models.NotificationRequest, 0)
	for rows.Next() {
		var req models.NotificationRequest
		var id, strength, createdAt string
		var delayMs int64
		if err := rows.Scan(&id, &req.ScheduleID, &req.ExerciseID, &req.Message, &strength, &delayMs, &createdAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}

		req.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("notification for schedule %d: parse id %q: %w", req.ScheduleID, id, err)
		}
		req.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("notification for schedule %d: parse time %q: %w", req.ScheduleID, createdAt, err)
		}
		req.Strength = models.ReminderStrength(strength)
		req.FireDelay = time.Duration(delayMs) * time.Millisecond
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].FireAt().Before(requests[j].FireAt())
	})
	return requests, nil
}
