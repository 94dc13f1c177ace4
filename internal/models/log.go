package models

import "time"

// ExerciseLog is one recorded performance of an exercise.
type ExerciseLog struct {
	ID          int64     `json:"id"`
	ExerciseID  int64     `json:"exercise_id"`
	Magnitude   int       `json:"magnitude"`
	LogDay      Day       `json:"log_day"`
	RestSeconds *int      `json:"rest_seconds,omitempty"`
	Comment     *string   `json:"comment,omitempty"`
	Banner      bool      `json:"banner"`
	LogTime     time.Time `json:"log_time"`
}

// NewExerciseLog builds a log whose LogDay is the date of at.
func NewExerciseLog(exerciseID int64, magnitude int, at time.Time) ExerciseLog {
	return ExerciseLog{
		ExerciseID: exerciseID,
		Magnitude:  magnitude,
		LogDay:     DayOf(at),
		LogTime:    at,
	}
}

// ActivityResistance is the resistance value used by one log on one dimension.
type ActivityResistance struct {
	LogID        int64 `json:"log_id"`
	ResistanceID int64 `json:"resistance_id"`
	Value        int   `json:"value"`
}

// ActivityRow is a log joined with its exercise and resistance entries.
type ActivityRow struct {
	Log         ExerciseLog
	Exercise    Exercise
	Resistances []ActivityResistance
}

type ExerciseNote struct {
	Day       Day       `json:"day"`
	Note      string    `json:"note"`
	UpdatedAt time.Time `json:"updated_at"`
}
