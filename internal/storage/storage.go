package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

var ErrNotFound = errors.New("not found")

// Time columns are written in UTC with a fixed width, which makes them sort as
// text. Every writer, ImportFromTOML included, goes through this layout.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type Storage struct {
	DB *sql.DB
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

// Open connects to a local SQLite file ("file:" URLs) or a remote libsql
// database and makes sure the schema exists.
func Open(ctx context.Context, connectionString string) (*Storage, error) {
	driver := "libsql"
	if strings.HasPrefix(connectionString, "file:") {
		driver = "sqlite3"
	}

	db, err := sql.Open(driver, connectionString)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	st, err := New(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// New wraps an already open database, creating tables and the default catalog.
func New(ctx context.Context, db *sql.DB) (*Storage, error) {
	if err := initializeDB(ctx, db); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	if err := seedCatalog(ctx, db); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func initializeDB(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS magnitudes (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL UNIQUE,
            unit TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS resistances (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL UNIQUE,
            unit TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS exercises (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL UNIQUE,
            description TEXT NOT NULL DEFAULT '',
            magnitude_id INTEGER NOT NULL,
            FOREIGN KEY (magnitude_id) REFERENCES magnitudes(id)
        );

        CREATE TABLE IF NOT EXISTS exercise_resistances (
            exercise_id INTEGER NOT NULL,
            resistance_id INTEGER NOT NULL,
            PRIMARY KEY (exercise_id, resistance_id),
            FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE,
            FOREIGN KEY (resistance_id) REFERENCES resistances(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS exercise_logs (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            exercise_id INTEGER NOT NULL,
            magnitude INTEGER NOT NULL,
            log_day INTEGER NOT NULL,  -- Days since 1970-01-01.
            rest_seconds INTEGER,
            comment TEXT,
            banner INTEGER NOT NULL DEFAULT 0,
            log_time TEXT NOT NULL,
            FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE
        );

        CREATE INDEX IF NOT EXISTS idx_exercise_logs_day ON exercise_logs(log_day);
        CREATE INDEX IF NOT EXISTS idx_exercise_logs_exercise ON exercise_logs(exercise_id, log_day);

        CREATE TABLE IF NOT EXISTS activity_resistances (
            log_id INTEGER NOT NULL,
            resistance_id INTEGER NOT NULL,
            value INTEGER NOT NULL,
            PRIMARY KEY (log_id, resistance_id),
            FOREIGN KEY (log_id) REFERENCES exercise_logs(id) ON DELETE CASCADE,
            FOREIGN KEY (resistance_id) REFERENCES resistances(id)
        );

        CREATE TABLE IF NOT EXISTS exercise_schedules (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            exercise_id INTEGER NOT NULL,
            kind TEXT NOT NULL,
            monotonic_days INTEGER,
            day_of_week INTEGER,
            follows_exercise INTEGER,
            reminder TEXT NOT NULL,
            enabled INTEGER NOT NULL DEFAULT 1,
            dismissed INTEGER NOT NULL DEFAULT 0,
            show_after INTEGER,
            message TEXT,
            FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE,
            FOREIGN KEY (follows_exercise) REFERENCES exercises(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS exercise_notes (
            day INTEGER PRIMARY KEY,
            note TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS notification_queue (
            schedule_id INTEGER PRIMARY KEY,
            id TEXT NOT NULL UNIQUE,
            exercise_id INTEGER NOT NULL,
            message TEXT NOT NULL,
            strength TEXT NOT NULL,
            fire_delay_ms INTEGER NOT NULL,
            created_at TEXT NOT NULL,
            FOREIGN KEY (schedule_id) REFERENCES exercise_schedules(id) ON DELETE CASCADE
        );
    `)
	return err
}

func seedCatalog(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
        INSERT OR IGNORE INTO magnitudes (name, unit) VALUES
            ('Repetitions', 'reps'),
            ('Distance', 'm'),
            ('Duration', 's');

        INSERT OR IGNORE INTO resistances (name, unit) VALUES
            ('Weight', 'kg'),
            ('Angle', 'deg'),
            ('Hold', 's'),
            ('Band', 'lvl');
    `)
	return err
}

func (s *Storage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
