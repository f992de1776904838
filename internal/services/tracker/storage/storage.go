// Package storage defines persistence contracts for recorded exercises.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/trainingtracker/internal/services/tracker/exercise"
)

var (
	// ErrNotFound indicates a requested exercise record is missing.
	ErrNotFound = errors.New("record not found")
)

// DateLayout is the calendar-day format used for Exercise.Date.
const DateLayout = "2006-01-02"

// Exercise is one recorded training entry.
type Exercise struct {
	ID             int64
	Date           time.Time
	Sport          exercise.Sport
	Details        exercise.Details
	CaloriesBurned float64
	CreatedAt      time.Time
}

// Day truncates t to its UTC calendar day.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ExerciseStore persists exercise records.
type ExerciseStore interface {
	CreateExercise(ctx context.Context, record Exercise) (Exercise, error)
	GetExercise(ctx context.Context, id int64) (Exercise, error)
	ListExercises(ctx context.Context) ([]Exercise, error)
}
