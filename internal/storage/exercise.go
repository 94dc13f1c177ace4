package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/misterclayt0n/cadence/internal/models"
)

func (s *Storage) CreateMagnitude(ctx context.Context, m models.Magnitude) (int64, error) {
	return upsertMagnitude(ctx, s.DB, m)
}

func (s *Storage) CreateResistance(ctx context.Context, r models.Resistance) (int64, error) {
	return upsertResistance(ctx, s.DB, r)
}

func upsertMagnitude(ctx context.Context, q querier, m models.Magnitude) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx,
		`INSERT INTO magnitudes (name, unit) VALUES (?, ?)
			ON CONFLICT(name) DO UPDATE SET unit = excluded.unit
			RETURNING id`,
		m.Name, m.Unit,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert magnitude %s: %w", m.Name, err)
	}
	return id, nil
}

func upsertResistance(ctx context.Context, q querier, r models.Resistance) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx,
		`INSERT INTO resistances (name, unit) VALUES (?, ?)
			ON CONFLICT(name) DO UPDATE SET unit = excluded.unit
			RETURNING id`,
		r.Name, r.Unit,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert resistance %s: %w", r.Name, err)
	}
	return id, nil
}

func (s *Storage) AllMagnitudes(ctx context.Context) ([]models.Magnitude, error) {
	return allMagnitudes(ctx, s.DB)
}

func allMagnitudes(ctx context.Context, q querier) ([]models.Magnitude, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, name, unit FROM magnitudes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query magnitudes: %w", err)
	}
	defer rows.Close()

	magnitudes := make([]models.Magnitude, 0)
	for rows.Next() {
		var m models.Magnitude
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit); err != nil {
			return nil, fmt.Errorf("scan magnitude: %w", err)
		}
		magnitudes = append(magnitudes, m)
	}
	return magnitudes, rows.Err()
}

func (s *Storage) AllResistances(ctx context.Context) ([]models.Resistance, error) {
	return allResistances(ctx, s.DB)
}

func allResistances(ctx context.Context, q querier) ([]models.Resistance, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, name, unit FROM resistances ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query resistances: %w", err)
	}
	defer rows.Close()

	resistances := make([]models.Resistance, 0)
	for rows.Next() {
		var r models.Resistance
		if err := rows.Scan(&r.ID, &r.Name, &r.Unit); err != nil {
			return nil, fmt.Errorf("scan resistance: %w", err)
		}
		resistances = append(resistances, r)
	}
	return resistances, rows.Err()
}

// CreateExercise inserts the exercise, or updates the one with the same name, and
// replaces its valid resistances. It returns the exercise id.
func (s *Storage) CreateExercise(ctx context.Context, ex models.Exercise, resistanceIDs []int64) (int64, error) {
	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = upsertExercise(ctx, tx, ex, resistanceIDs)
		return err
	})
	return id, err
}

func upsertExercise(ctx context.Context, q querier, ex models.Exercise, resistanceIDs []int64) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx,
		`INSERT INTO exercises (name, description, magnitude_id)
			VALUES (?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				description = excluded.description,
				magnitude_id = excluded.magnitude_id
			RETURNING id`,
		ex.Name,
		ex.Description,
		ex.MagnitudeID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert exercise %s: %w", ex.Name, err)
	}

	if _, err := q.ExecContext(ctx, `DELETE FROM exercise_resistances WHERE exercise_id = ?`, id); err != nil {
		return 0, fmt.Errorf("clear resistances of exercise %s: %w", ex.Name, err)
	}
	for _, rid := range resistanceIDs {
		_, err := q.ExecContext(ctx,
			`INSERT OR IGNORE INTO exercise_resistances (exercise_id, resistance_id) VALUES (?, ?)`,
			id, rid,
		)
		if err != nil {
			return 0, fmt.Errorf("link resistance %d to exercise %s: %w", rid, ex.Name, err)
		}
	}
	return id, nil
}

func (s *Storage) GetExerciseByName(ctx context.Context, name string) (*models.Exercise, error) {
	return s.getExercise(ctx, `WHERE name = ? COLLATE NOCASE`, strings.TrimSpace(name))
}

func (s *Storage) GetExerciseByID(ctx context.Context, id int64) (*models.Exercise, error) {
	return s.getExercise(ctx, `WHERE id = ?`, id)
}

func (s *Storage) getExercise(ctx context.Context, where string, arg any) (*models.Exercise, error) {
	var ex models.Exercise
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, name, description, magnitude_id FROM exercises `+where,
		arg,
	).Scan(&ex.ID, &ex.Name, &ex.Description, &ex.MagnitudeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("exercise %v: %w", arg, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query exercise %v: %w", arg, err)
	}
	return &ex, nil
}

func (s *Storage) AllExercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, name, description, magnitude_id FROM exercises ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		var ex models.Exercise
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.Description, &ex.MagnitudeID); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, ex)
	}
	return exercises, rows.Err()
}

// ResistancesForExercise returns the resistances the exercise may be logged with.
func (s *Storage) ResistancesForExercise(ctx context.Context, exerciseID int64) ([]models.Resistance, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT r.id, r.name, r.unit
		FROM resistances r
		JOIN exercise_resistances er ON er.resistance_id = r.id
		WHERE er.exercise_id = ?
		ORDER BY r.id`,
		exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("query resistances of exercise %d: %w", exerciseID, err)
	}
	defer rows.Close()

	resistances := make([]models.Resistance, 0)
	for rows.Next() {
		var r models.Resistance
		if err := rows.Scan(&r.ID, &r.Name, &r.Unit); err != nil {
			return nil, fmt.Errorf("scan resistance: %w", err)
		}
		resistances = append(resistances, r)
	}
	return resistances, rows.Err()
}

// DeleteExercise removes the exercise with its logs, their resistances, its
// schedules, schedules following it and their queued notifications.
func (s *Storage) DeleteExercise(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		steps := []struct {
			what  string
			query string
			args  []any
		}{
			{"activity resistances", `DELETE FROM activity_resistances WHERE log_id IN (SELECT id FROM exercise_logs WHERE exercise_id = ?)`, []any{id}},
			{"logs", `DELETE FROM exercise_logs WHERE exercise_id = ?`, []any{id}},
			{"queued notifications", `DELETE FROM notification_queue WHERE schedule_id IN (SELECT id FROM exercise_schedules WHERE exercise_id = ? OR follows_exercise = ?)`, []any{id, id}},
			{"schedules", `DELETE FROM exercise_schedules WHERE exercise_id = ? OR follows_exercise = ?`, []any{id, id}},
			{"exercise resistances", `DELETE FROM exercise_resistances WHERE exercise_id = ?`, []any{id}},
		}
		for _, step := range steps {
			if _, err := tx.ExecContext(ctx, step.query, step.args...); err != nil {
				return fmt.Errorf("delete %s of exercise %d: %w", step.what, id, err)
			}
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete exercise %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("exercise %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

// ImportCatalog upserts magnitudes, resistances and exercises by name in one
// transaction. Exercises refer to magnitudes and resistances by name.
func (s *Storage) ImportCatalog(ctx context.Context, c models.CatalogImport) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, m := range c.Magnitudes {
			if _, err := upsertMagnitude(ctx, tx, models.Magnitude{Name: m.Name, Unit: m.Unit}); err != nil {
				return err
			}
		}
		for _, r := range c.Resistances {
			if _, err := upsertResistance(ctx, tx, models.Resistance{Name: r.Name, Unit: r.Unit}); err != nil {
				return err
			}
		}

		magnitudes, err := allMagnitudes(ctx, tx)
		if err != nil {
			return err
		}
		magnitudeByName := make(map[string]int64, len(magnitudes))
		for _, m := range magnitudes {
			magnitudeByName[strings.ToLower(m.Name)] = m.ID
		}

		resistances, err := allResistances(ctx, tx)
		if err != nil {
			return err
		}
		resistanceByName := make(map[string]int64, len(resistances))
		for _, r := range resistances {
			resistanceByName[strings.ToLower(r.Name)] = r.ID
		}

		for _, exTOML := range c.Exercises {
			magnitudeID, ok := magnitudeByName[strings.ToLower(exTOML.Magnitude)]
			if !ok {
				return fmt.Errorf("exercise %s: unknown magnitude %q", exTOML.Name, exTOML.Magnitude)
			}

			resistanceIDs := make([]int64, 0, len(exTOML.Resistances))
			for _, name := range exTOML.Resistances {
				rid, ok := resistanceByName[strings.ToLower(name)]
				if !ok {
					return fmt.Errorf("exercise %s: unknown resistance %q", exTOML.Name, name)
				}
				resistanceIDs = append(resistanceIDs, rid)
			}

			ex := models.Exercise{
				Name:        exTOML.Name,
				Description: exTOML.Description,
				MagnitudeID: magnitudeID,
			}
			if _, err := upsertExercise(ctx, tx, ex, resistanceIDs); err != nil {
				return err
			}
		}
		return nil
	})
}
