package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationRequest is a reminder handed to the platform notification layer.
type NotificationRequest struct {
	ID         uuid.UUID        `json:"id"`
	ScheduleID int64            `json:"schedule_id"`
	ExerciseID int64            `json:"exercise_id"`
	Message    string           `json:"message"`
	Strength   ReminderStrength `json:"strength"`
	FireDelay  time.Duration    `json:"fire_delay"`
	CreatedAt  time.Time        `json:"created_at"`
}

// FireAt is when the notification should be shown.
func (r NotificationRequest) FireAt() time.Time {
	return r.CreatedAt.Add(r.FireDelay)
}
