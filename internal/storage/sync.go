package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// dumpTables lists the exported tables, parents before children.
var dumpTables = []string{
	"magnitudes",
	"resistances",
	"exercises",
	"exercise_resistances",
	"exercise_logs",
	"activity_resistances",
	"exercise_schedules",
	"exercise_notes",
	"notification_queue",
}

// timeColumns are reformatted to timeLayout on import.
var timeColumns = map[string]map[string]bool{
	"exercise_logs":      {"log_time": true},
	"exercise_notes":     {"updated_at": true},
	"notification_queue": {"created_at": true},
}

var identifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

type dump map[string][]map[string]any

// ExportToTOML writes every row of every table to a single TOML file, one
// array of tables per database table.
func (s *Storage) ExportToTOML(ctx context.Context, outputPath string) error {
	dbDump := make(dump, len(dumpTables))
	for _, table := range dumpTables {
		rows, err := dumpTable(ctx, s.DB, table)
		if err != nil {
			return err
		}
		dbDump[table] = rows
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(dbDump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	outputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

func dumpTable(ctx context.Context, q querier, table string) ([]map[string]any, error) {
	rows, err := q.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s;", table))
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("getting columns for table %s: %w", table, err)
	}

	tableData := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("scanning row in table %s: %w", table, err)
		}

		// NULL columns are left out; TOML has no null.
		rowMap := make(map[string]any, len(cols))
		for i, col := range cols {
			switch val := values[i].(type) {
			case nil:
			case []byte:
				rowMap[col] = string(val)
			default:
				rowMap[col] = val
			}
		}
		tableData = append(tableData, rowMap)
	}
	return tableData, rows.Err()
}

// GetDBExportPath returns ~/.config/cadence/db_dump.toml, creating the
// directory if needed.
func GetDBExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "cadence")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "db_dump.toml"), nil
}

// ImportFromTOML replaces the content of every known table with the rows of
// the dump at filePath. Unknown tables in the dump are rejected.
func (s *Storage) ImportFromTOML(ctx context.Context, filePath string) error {
	var dbDump dump
	if _, err := toml.DecodeFile(filePath, &dbDump); err != nil {
		return fmt.Errorf("decoding %s: %w", filePath, err)
	}

	known := make(map[string]bool, len(dumpTables))
	for _, table := range dumpTables {
		known[table] = true
	}
	for table := range dbDump {
		if !known[table] {
			return fmt.Errorf("unknown table %q in dump", table)
		}
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		for i := len(dumpTables) - 1; i >= 0; i-- {
			if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s;", dumpTables[i])); err != nil {
				return fmt.Errorf("clearing table %s: %w", dumpTables[i], err)
			}
		}

		for _, table := range dumpTables {
			for _, row := range dbDump[table] {
				if err := insertRow(ctx, tx, table, row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func insertRow(ctx context.Context, tx *sql.Tx, table string, row map[string]any) error {
	columns := make([]string, 0, len(row))
	for col := range row {
		if !identifier.MatchString(col) {
			return fmt.Errorf("invalid column %q in table %s", col, table)
		}
		columns = append(columns, col)
	}
	sort.Strings(columns)

	placeholders := make([]string, len(columns))
	values := make([]any, len(columns))
	for i, col := range columns {
		placeholders[i] = "?"
		values[i] = row[col]
		if timeColumns[table][col] {
			v, err := normalizeTime(row[col])
			if err != nil {
				return fmt.Errorf("table %s column %s: %w", table, col, err)
			}
			values[i] = v
		}
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	if _, err := tx.ExecContext(ctx, query, values...); err != nil {
		return fmt.Errorf("inserting into table %s: %w", table, err)
	}
	return nil
}

// normalizeTime rewrites a dumped time in UTC with timeLayout.
func normalizeTime(v any) (string, error) {
	var t time.Time
	switch val := v.(type) {
	case time.Time:
		t = val
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, val)
		if err != nil {
			return "", fmt.Errorf("parse time %q: %w", val, err)
		}
		t = parsed
	default:
		return "", fmt.Errorf("unexpected time value %v (%T)", v, v)
	}
	return t.UTC().Format(timeLayout), nil
}
