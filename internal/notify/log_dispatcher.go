package notify

import (
	"context"

	"github.com/misterclayt0n/cadence/internal/models"

	log "github.com/sirupsen/logrus"
)

// LogDispatcher only logs what would be sent.
type LogDispatcher struct{}

func (LogDispatcher) ScheduleNotification(_ context.Context, req models.NotificationRequest) error {
	log.WithFields(log.Fields{
		"request":  req.ID.String(),
		"schedule": req.ScheduleID,
		"exercise": req.ExerciseID,
		"strength": req.Strength,
		"delay":    req.FireDelay.String(),
	}).Infof("notification: %s", req.Message)
	return nil
}

func (LogDispatcher) CancelNotification(_ context.Context, scheduleID int64) error {
	log.WithField("schedule", scheduleID).Info("notification cancelled")
	return nil
}
