package exercise

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFactoryCreateComputesCalories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		sport string
		input map[string]any
		want  float64
	}{
		{name: "running", sport: "running", input: map[string]any{"time": 30.0, "distance": 5.0}, want: 300},
		{name: "swimming", sport: "swimming", input: map[string]any{"time": 20.0, "distance": 1.0}, want: 240},
		{name: "cycling", sport: "cycling", input: map[string]any{"time": 45.0, "distance": 20.0}, want: 360},
		{name: "pullups", sport: "pullups", input: map[string]any{"sets": 3.0, "reps_per_set": 10.0}, want: 15},
		{name: "pushups", sport: "pushups", input: map[string]any{"sets": 4.0, "reps_per_set": 25.0}, want: 50},
		{name: "weights", sport: "weights", input: map[string]any{"exercise_type": "squat", "sets": 5.0, "reps_per_set": 5.0}, want: 15},
	}
	factory := NewFactory(nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sport, details, err := factory.Create(tc.sport, tc.input)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if string(sport) != tc.sport {
				t.Fatalf("sport = %q, want %q", sport, tc.sport)
			}
			got, ok := details.Float(FieldCaloriesBurned)
			if !ok {
				t.Fatalf("details missing %s: %v", FieldCaloriesBurned, details)
			}
			if got != tc.want {
				t.Fatalf("calories = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFactoryCreateKeepsOnlyKnownFields(t *testing.T) {
	t.Parallel()

	_, details, err := NewFactory(nil).Create("weights", map[string]any{
		"sport":         "weights",
		"exercise_type": " bench press ",
		"sets":          3.0,
		"reps_per_set":  8.0,
		"mood":          "great",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(details) != 4 {
		t.Fatalf("details = %v, want exercise_type, sets, reps_per_set, calories_burned", details)
	}
	if got, _ := details.String(FieldExerciseType); got != "bench press" {
		t.Fatalf("exercise_type = %q, want %q", got, "bench press")
	}
	if _, ok := details["mood"]; ok {
		t.Fatal("unexpected passthrough of unknown field")
	}
}

func TestFactoryCreateRejectsUnsupportedSport(t *testing.T) {
	t.Parallel()

	for _, sport := range []string{"", "rowing", "Running"} {
		_, _, err := NewFactory(nil).Create(sport, map[string]any{"time": 1.0, "distance": 1.0})
		if !errors.Is(err, ErrUnsupportedSport) {
			t.Fatalf("Create(%q) error = %v, want %v", sport, err, ErrUnsupportedSport)
		}
		if err.Error() != "Unsupported sport type" {
			t.Fatalf("message = %q", err.Error())
		}
	}
}

func TestFactoryCreateRejectsSportMissingFromRates(t *testing.T) {
	t.Parallel()

	factory := NewFactory(Rates{SportRunning: 10})
	_, _, err := factory.Create("cycling", map[string]any{"time": 1.0, "distance": 1.0})
	if !errors.Is(err, ErrUnsupportedSport) {
		t.Fatalf("Create() error = %v, want %v", err, ErrUnsupportedSport)
	}
}

func TestFactoryCreateMissingFieldMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sport string
		input map[string]any
		want  string
	}{
		{sport: "running", input: map[string]any{"time": 10.0}, want: "Running requires 'time' and 'distance'"},
		{sport: "swimming", input: map[string]any{"distance": 1.0}, want: "Swimming requires 'time' and 'distance'"},
		{sport: "cycling", input: map[string]any{}, want: "Cycling requires 'time' and 'distance'"},
		{sport: "pullups", input: map[string]any{"sets": 3.0}, want: "Pull-ups require 'sets' and 'reps_per_set'"},
		{sport: "pushups", input: map[string]any{"reps_per_set": 3.0}, want: "Push-ups require 'sets' and 'reps_per_set'"},
		{sport: "weights", input: map[string]any{"sets": 3.0, "reps_per_set": 3.0}, want: "Weights require 'exercise_type', 'sets', and 'reps_per_set'"},
	}
	for _, tc := range tests {
		t.Run(tc.sport, func(t *testing.T) {
			t.Parallel()
			_, _, err := NewFactory(nil).Create(tc.sport, tc.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !IsValidation(err) {
				t.Fatalf("error %v is not a validation error", err)
			}
			if err.Error() != tc.want {
				t.Fatalf("message = %q, want %q", err.Error(), tc.want)
			}
		})
	}
}

func TestFactoryCreateRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		sport string
		input map[string]any
	}{
		{name: "string time", sport: "running", input: map[string]any{"time": "30", "distance": 5.0}},
		{name: "negative distance", sport: "running", input: map[string]any{"time": 30.0, "distance": -1.0}},
		{name: "fractional sets", sport: "pushups", input: map[string]any{"sets": 1.5, "reps_per_set": 10.0}},
		{name: "null reps", sport: "pullups", input: map[string]any{"sets": 1.0, "reps_per_set": nil}},
		{name: "blank exercise type", sport: "weights", input: map[string]any{"exercise_type": "  ", "sets": 1.0, "reps_per_set": 1.0}},
		{name: "numeric exercise type", sport: "weights", input: map[string]any{"exercise_type": 3.0, "sets": 1.0, "reps_per_set": 1.0}},
		{name: "overflowing time", sport: "running", input: map[string]any{"time": 1e308, "distance": 5.0}},
		{name: "overflowing repetitions", sport: "pushups", input: map[string]any{"sets": 1e200, "reps_per_set": 1e200}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := NewFactory(nil).Create(tc.sport, tc.input)
			if !IsValidation(err) {
				t.Fatalf("Create() error = %v, want validation error", err)
			}
		})
	}
}

func TestFactoryCreateAcceptsJSONNumbers(t *testing.T) {
	t.Parallel()

	_, details, err := NewFactory(nil).Create("running", map[string]any{
		"time":     json.Number("12.5"),
		"distance": json.Number("3"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got, _ := details.Float(FieldCaloriesBurned); got != 125 {
		t.Fatalf("calories = %v, want 125", got)
	}
}

func TestFactoryUsesCustomRates(t *testing.T) {
	t.Parallel()

	rates := DefaultRates()
	rates[SportRunning] = 11.5
	_, details, err := NewFactory(rates).Create("running", map[string]any{"time": 10.0, "distance": 2.0})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got, _ := details.Float(FieldCaloriesBurned); got != 115 {
		t.Fatalf("calories = %v, want 115", got)
	}
}

func TestCaloriesRequiresMeasureFields(t *testing.T) {
	t.Parallel()

	if _, err := NewFactory(nil).Calories(SportRunning, Details{}); err == nil {
		t.Fatal("expected missing time error")
	}
	if _, err := NewFactory(nil).Calories(SportPullups, Details{FieldSets: 2.0}); err == nil {
		t.Fatal("expected missing reps error")
	}
}
