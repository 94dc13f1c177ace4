package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/misterclayt0n/cadence/internal/models"
)

// UpsertNote sets the note of a day, replacing any previous one.
func (s *Storage) UpsertNote(ctx context.Context, note models.ExerciseNote) error {
	if note.UpdatedAt.IsZero() {
		note.UpdatedAt = time.Now()
	}
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO exercise_notes (day, note, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(day) DO UPDATE SET
				note = excluded.note,
				updated_at = excluded.updated_at`,
		int64(note.Day), note.Note, note.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("upsert note of %s: %w", note.Day, err)
	}
	return nil
}

// GetNote returns the note of a day, or nil when there is none.
func (s *Storage) GetNote(ctx context.Context, day models.Day) (*models.ExerciseNote, error) {
	var text, updatedAt string
	err := s.DB.QueryRowContext(ctx,
		`SELECT note, updated_at FROM exercise_notes WHERE day = ?`,
		int64(day),
	).Scan(&text, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query note of %s: %w", day, err)
	}

	note := &models.ExerciseNote{Day: day, Note: text}
	note.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse note time %q: %w", updatedAt, err)
	}
	return note, nil
}

func (s *Storage) DeleteNote(ctx context.Context, day models.Day) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM exercise_notes WHERE day = ?`, int64(day)); err != nil {
		return fmt.Errorf("delete note of %s: %w", day, err)
	}
	return nil
}
