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

const logColumns = `l.id, l.exercise_id, l.magnitude, l.log_day, l.rest_seconds, l.comment, l.banner, l.log_time`

// logRow mirrors an exercise_logs row.
type logRow struct {
	ID          int64
	ExerciseID  int64
	Magnitude   int64
	LogDay      int64
	RestSeconds sql.NullInt64
	Comment     sql.NullString
	Banner      int64
	LogTime     string
}

func (r *logRow) scanFields() []any {
	return []any{&r.ID, &r.ExerciseID, &r.Magnitude, &r.LogDay, &r.RestSeconds, &r.Comment, &r.Banner, &r.LogTime}
}

func (r logRow) toModel() (models.ExerciseLog, error) {
	logTime, err := time.Parse(time.RFC3339Nano, r.LogTime)
	if err != nil {
		return models.ExerciseLog{}, fmt.Errorf("log %d: parse log time %q: %w", r.ID, r.LogTime, err)
	}

	l := models.ExerciseLog{
		ID:         r.ID,
		ExerciseID: r.ExerciseID,
		Magnitude:  int(r.Magnitude),
		LogDay:     models.Day(r.LogDay),
		Banner:     utils.IntToBool(r.Banner),
		LogTime:    logTime,
	}
	if r.RestSeconds.Valid {
		rest := int(r.RestSeconds.Int64)
		l.RestSeconds = &rest
	}
	if r.Comment.Valid {
		comment := r.Comment.String
		l.Comment = &comment
	}
	return l, nil
}

// logToRow maps a log onto its row. LogDay is written as given: LogTime is
// stored in UTC, so the day cannot be derived again from a log read back.
func logToRow(l models.ExerciseLog) logRow {
	r := logRow{
		ID:         l.ID,
		ExerciseID: l.ExerciseID,
		Magnitude:  int64(l.Magnitude),
		LogDay:     int64(l.LogDay),
		Banner:     int64(utils.BoolToInt(l.Banner)),
		LogTime:    l.LogTime.UTC().Format(timeLayout),
	}
	if l.RestSeconds != nil {
		r.RestSeconds = sql.NullInt64{Int64: int64(*l.RestSeconds), Valid: true}
	}
	if l.Comment != nil {
		r.Comment = sql.NullString{String: *l.Comment, Valid: true}
	}
	return r
}

func scanLog(sc scanner) (models.ExerciseLog, error) {
	var r logRow
	if err := sc.Scan(r.scanFields()...); err != nil {
		return models.ExerciseLog{}, err
	}
	return r.toModel()
}

// InsertLog stores a log together with its resistance entries and returns the new id.
func (s *Storage) InsertLog(ctx context.Context, l models.ExerciseLog, resistances []models.ActivityResistance) (int64, error) {
	r := logToRow(l)

	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO exercise_logs
				(exercise_id, magnitude, log_day, rest_seconds, comment, banner, log_time)
				VALUES (?, ?, ?, ?, ?, ?, ?)
				RETURNING id`,
			r.ExerciseID, r.Magnitude, r.LogDay, r.RestSeconds, r.Comment, r.Banner, r.LogTime,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert log: %w", err)
		}

		for _, ar := range resistances {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO activity_resistances (log_id, resistance_id, value) VALUES (?, ?, ?)`,
				id, ar.ResistanceID, ar.Value,
			)
			if err != nil {
				return fmt.Errorf("insert resistance %d of log %d: %w", ar.ResistanceID, id, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateLog replaces a log row, LogDay included. Callers moving a log in time
// set LogDay themselves. Its resistance entries are left as they are.
func (s *Storage) UpdateLog(ctx context.Context, l models.ExerciseLog) error {
	r := logToRow(l)
	res, err := s.DB.ExecContext(ctx,
		`UPDATE exercise_logs SET
			exercise_id = ?, magnitude = ?, log_day = ?, rest_seconds = ?, comment = ?, banner = ?, log_time = ?
			WHERE id = ?`,
		r.ExerciseID, r.Magnitude, r.LogDay, r.RestSeconds, r.Comment, r.Banner, r.LogTime, r.ID,
	)
	if err != nil {
		return fmt.Errorf("update log %d: %w", l.ID, err)
	}
	return requireAffected(res, fmt.Sprintf("log %d", l.ID))
}

// DeleteLogs removes the logs and their resistance entries. Unknown ids are
// skipped; the number of deleted logs is returned.
func (s *Storage) DeleteLogs(ctx context.Context, ids []int64) (int64, error) {
	var deleted int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		for _, id := range ids {
			if _, err := tx.ExecContext(ctx, `DELETE FROM activity_resistances WHERE log_id = ?`, id); err != nil {
				return fmt.Errorf("delete resistances of log %d: %w", id, err)
			}
			res, err := tx.ExecContext(ctx, `DELETE FROM exercise_logs WHERE id = ?`, id)
			if err != nil {
				return fmt.Errorf("delete log %d: %w", id, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			deleted += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (s *Storage) GetLog(ctx context.Context, id int64) (*models.ExerciseLog, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+logColumns+` FROM exercise_logs l WHERE l.id = ?`, id)
	l, err := scanLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("log %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// FlatActivityRowsForDay returns one row per log of the day, each with its
// exercise and resistance entries, ordered by log time.
func (s *Storage) FlatActivityRowsForDay(ctx context.Context, day models.Day) ([]models.ActivityRow, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+logColumns+`, e.name, e.description, e.magnitude_id
		FROM exercise_logs l
		JOIN exercises e ON e.id = l.exercise_id
		WHERE l.log_day = ?
		ORDER BY l.log_time, l.id`,
		int64(day),
	)
	if err != nil {
		return nil, fmt.Errorf("query logs of day %s: %w", day, err)
	}
	defer rows.Close()

	result := make([]models.ActivityRow, 0)
	logIndex := make(map[int64]int)
	for rows.Next() {
		var r logRow
		var ex models.Exercise
		dest := append(r.scanFields(), &ex.Name, &ex.Description, &ex.MagnitudeID)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		l, err := r.toModel()
		if err != nil {
			return nil, err
		}
		ex.ID = l.ExerciseID

		logIndex[l.ID] = len(result)
		result = append(result, models.ActivityRow{
			Log:         l,
			Exercise:    ex,
			Resistances: make([]models.ActivityResistance, 0),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	resRows, err := s.DB.QueryContext(ctx, `
		SELECT ar.log_id, ar.resistance_id, ar.value
		FROM activity_resistances ar
		JOIN exercise_logs l ON l.id = ar.log_id
		WHERE l.log_day = ?
		ORDER BY ar.rowid`,
		int64(day),
	)
	if err != nil {
		return nil, fmt.Errorf("query resistances of day %s: %w", day, err)
	}
	defer resRows.Close()

	for resRows.Next() {
		var ar models.ActivityResistance
		if err := resRows.Scan(&ar.LogID, &ar.ResistanceID, &ar.Value); err != nil {
			return nil, fmt.Errorf("scan activity resistance: %w", err)
		}
		if i, ok := logIndex[ar.LogID]; ok {
			result[i].Resistances = append(result[i].Resistances, ar)
		}
	}
	return result, resRows.Err()
}

// LatestLogForExercise returns the most recent log of the exercise, or nil.
func (s *Storage) LatestLogForExercise(ctx context.Context, exerciseID int64) (*models.ExerciseLog, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT `+logColumns+`
		FROM exercise_logs l
		WHERE l.exercise_id = ?
		ORDER BY l.log_day DESC, l.log_time DESC, l.id DESC
		LIMIT 1`,
		exerciseID,
	)
	return optionalLog(scanLog(row))
}

// LatestLogOnOrBefore returns the most recent log of the exercise dated on or before day, or nil.
func (s *Storage) LatestLogOnOrBefore(ctx context.Context, exerciseID int64, day models.Day) (*models.ExerciseLog, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT `+logColumns+`
		FROM exercise_logs l
		WHERE l.exercise_id = ? AND l.log_day <= ?
		ORDER BY l.log_day DESC, l.log_time DESC, l.id DESC
		LIMIT 1`,
		exerciseID, int64(day),
	)
	return optionalLog(scanLog(row))
}

func optionalLog(l models.ExerciseLog, err error) (*models.ExerciseLog, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest log: %w", err)
	}
	return &l, nil
}

// LogDays counts logs per day between from and to, both included.
func (s *Storage) LogDays(ctx context.Context, from, to models.Day) (map[models.Day]int, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT log_day, COUNT(*)
		FROM exercise_logs
		WHERE log_day BETWEEN ? AND ?
		GROUP BY log_day`,
		int64(from), int64(to),
	)
	if err != nil {
		return nil, fmt.Errorf("query log days: %w", err)
	}
	defer rows.Close()

	days := make(map[models.Day]int)
	for rows.Next() {
		var day int64
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("scan log day: %w", err)
		}
		days[models.Day(day)] = count
	}
	return days, rows.Err()
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
