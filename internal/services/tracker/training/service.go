// Package training records exercises and summarizes training history.
package training

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/louisbranch/trainingtracker/internal/services/tracker/exercise"
	apperrors "github.com/louisbranch/trainingtracker/internal/services/tracker/platform/errors"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/trainingtracker/internal/services/tracker/training"

const unexpectedErrorMessage = "An unexpected error occurred"

// Service validates and persists exercises.
type Service struct {
	store   storage.ExerciseStore
	factory exercise.Factory
	tracer  trace.Tracer
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used for record dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(s *Service) {
		if provider != nil {
			s.tracer = provider.Tracer(tracerName)
		}
	}
}

// NewService builds a Service over store using factory for validation.
func NewService(store storage.ExerciseStore, factory exercise.Factory, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("exercise store is required")
	}
	s := &Service{
		store:   store,
		factory: factory,
		tracer:  otel.Tracer(tracerName),
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Today returns the current UTC calendar day.
func (s *Service) Today() time.Time {
	return storage.Day(s.now())
}

// Record validates input for sport and stores the resulting exercise.
// Validation failures are KindInvalidInput errors.
func (s *Service) Record(ctx context.Context, sport string, input map[string]any) (storage.Exercise, error) {
	ctx, span := s.tracer.Start(ctx, "training.Record", trace.WithAttributes(attribute.String("exercise.sport", sport)))
	defer span.End()

	parsed, details, err := s.factory.Create(sport, input)
	if err != nil {
		if exercise.IsValidation(err) {
			span.SetStatus(codes.Error, err.Error())
			return storage.Exercise{}, apperrors.Wrap(apperrors.KindInvalidInput, err.Error(), err)
		}
		return storage.Exercise{}, s.fail(span, fmt.Errorf("create exercise: %w", err))
	}
	calories, _ := details.Float(exercise.FieldCaloriesBurned)

	record, err := s.store.CreateExercise(ctx, storage.Exercise{
		Date:           s.Today(),
		Sport:          parsed,
		Details:        details,
		CaloriesBurned: calories,
	})
	if err != nil {
		return storage.Exercise{}, s.fail(span, err)
	}
	span.SetAttributes(
		attribute.Int64("exercise.id", record.ID),
		attribute.Float64("exercise.calories_burned", record.CaloriesBurned),
	)
	return record, nil
}

// Get returns one exercise. Missing records are KindNotFound errors.
func (s *Service) Get(ctx context.Context, id int64) (storage.Exercise, error) {
	ctx, span := s.tracer.Start(ctx, "training.Get", trace.WithAttributes(attribute.Int64("exercise.id", id)))
	defer span.End()

	record, err := s.store.GetExercise(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return storage.Exercise{}, apperrors.Wrap(apperrors.KindNotFound, "Exercise not found", err)
	}
	if err != nil {
		return storage.Exercise{}, s.fail(span, err)
	}
	return record, nil
}

// List returns every exercise in insertion order.
func (s *Service) List(ctx context.Context) ([]storage.Exercise, error) {
	ctx, span := s.tracer.Start(ctx, "training.List")
	defer span.End()

	records, err := s.store.ListExercises(ctx)
	if err != nil {
		return nil, s.fail(span, err)
	}
	span.SetAttributes(attribute.Int("exercise.count", len(records)))
	return records, nil
}

func (s *Service) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return apperrors.Wrap(apperrors.KindUnknown, unexpectedErrorMessage, err)
}

// SportTotal aggregates the exercises of one sport.
type SportTotal struct {
	Sport    exercise.Sport
	Count    int
	Calories float64
}

// Summary aggregates a set of exercises.
type Summary struct {
	Count    int
	Calories float64
	BySport  []SportTotal
}

// Summarize totals records overall and per sport. Sports follow
// exercise.Sports order; unknown sports sort after them by name.
func Summarize(records []storage.Exercise) Summary {
	summary := Summary{}
	totals := map[exercise.Sport]*SportTotal{}
	for _, record := range records {
		summary.Count++
		summary.Calories += record.CaloriesBurned
		total, ok := totals[record.Sport]
		if !ok {
			total = &SportTotal{Sport: record.Sport}
			totals[record.Sport] = total
		}
		total.Count++
		total.Calories += record.CaloriesBurned
	}

	for _, sport := range exercise.Sports() {
		if total, ok := totals[sport]; ok {
			summary.BySport = append(summary.BySport, *total)
			delete(totals, sport)
		}
	}
	rest := make([]SportTotal, 0, len(totals))
	for _, total := range totals {
		rest = append(rest, *total)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Sport < rest[j].Sport })
	summary.BySport = append(summary.BySport, rest...)
	return summary
}
