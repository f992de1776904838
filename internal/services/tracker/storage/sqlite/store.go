// Package sqlite provides a SQLite-backed exercise storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/trainingtracker/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/exercise"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/storage"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const exerciseColumns = `id, date, sport, details, calories_burned, created_at`

// Store persists exercises in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite exercise store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return s.sqlDB.PingContext(ctx)
}

// CreateExercise inserts one exercise and returns it with its assigned ID.
// A zero Date defaults to the current UTC day.
func (s *Store) CreateExercise(ctx context.Context, record storage.Exercise) (storage.Exercise, error) {
	if err := ctx.Err(); err != nil {
		return storage.Exercise{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Exercise{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(string(record.Sport)) == "" {
		return storage.Exercise{}, fmt.Errorf("sport is required")
	}
	if record.CaloriesBurned < 0 {
		return storage.Exercise{}, fmt.Errorf("calories burned must not be negative")
	}
	details := record.Details
	if details == nil {
		details = exercise.Details{}
	}
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return storage.Exercise{}, fmt.Errorf("encode details: %w", err)
	}

	now := s.now().UTC()
	createdAt := record.CreatedAt.UTC()
	if record.CreatedAt.IsZero() {
		createdAt = now
	}
	date := record.Date
	if date.IsZero() {
		date = now
	}
	date = storage.Day(date)

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO exercises (date, sport, details, calories_burned, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		date.Format(storage.DateLayout),
		string(record.Sport),
		string(detailsJSON),
		record.CaloriesBurned,
		toMillis(createdAt),
	)
	if err != nil {
		return storage.Exercise{}, fmt.Errorf("create exercise: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return storage.Exercise{}, fmt.Errorf("create exercise: %w", err)
	}

	record.ID = id
	record.Date = date
	record.Details = details
	record.CreatedAt = fromMillis(toMillis(createdAt))
	return record, nil
}

// GetExercise returns one exercise by ID.
func (s *Store) GetExercise(ctx context.Context, id int64) (storage.Exercise, error) {
	if err := ctx.Err(); err != nil {
		return storage.Exercise{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Exercise{}, fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return storage.Exercise{}, storage.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+exerciseColumns+` FROM exercises WHERE id = ?`, id)
	record, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Exercise{}, storage.ErrNotFound
		}
		return storage.Exercise{}, fmt.Errorf("get exercise: %w", err)
	}
	return record, nil
}

// ListExercises returns every exercise ordered by ID.
func (s *Store) ListExercises(ctx context.Context) ([]storage.Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT `+exerciseColumns+` FROM exercises ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	records := []storage.Exercise{}
	for rows.Next() {
		record, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("list exercises: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExercise(row rowScanner) (storage.Exercise, error) {
	var (
		record    storage.Exercise
		date      string
		sport     string
		details   string
		createdAt int64
	)
	if err := row.Scan(&record.ID, &date, &sport, &details, &record.CaloriesBurned, &createdAt); err != nil {
		return storage.Exercise{}, err
	}
	day, err := time.ParseInLocation(storage.DateLayout, date, time.UTC)
	if err != nil {
		return storage.Exercise{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	record.Details = exercise.Details{}
	if err := json.Unmarshal([]byte(details), &record.Details); err != nil {
		return storage.Exercise{}, fmt.Errorf("decode details: %w", err)
	}
	record.Date = day
	record.Sport = exercise.Sport(sport)
	record.CreatedAt = fromMillis(createdAt)
	return record, nil
}

var _ storage.ExerciseStore = (*Store)(nil)
