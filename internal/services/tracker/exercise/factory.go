package exercise

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnsupportedSport reports a sport with no known calorie rate.
var ErrUnsupportedSport = &ValidationError{Message: "Unsupported sport type"}

// ValidationError describes input the factory refused.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// Details are the validated, sport-specific attributes of an entry,
// including the computed calories.
type Details map[string]any

// Float reads a numeric detail.
func (d Details) Float(key string) (float64, bool) {
	value, ok := d[key]
	if !ok {
		return 0, false
	}
	return toFloat(value)
}

// String reads a text detail.
func (d Details) String(key string) (string, bool) {
	value, ok := d[key].(string)
	return value, ok
}

// Factory turns raw request fields into validated details.
type Factory struct {
	rates Rates
}

// NewFactory builds a factory over rates. Nil rates use DefaultRates.
func NewFactory(rates Rates) Factory {
	if rates == nil {
		rates = DefaultRates()
	}
	return Factory{rates: rates}
}

// Create validates input for sport and returns the details to store, with
// FieldCaloriesBurned set.
func (f Factory) Create(sport string, input map[string]any) (Sport, Details, error) {
	parsed, ok := ParseSport(sport)
	if !ok {
		return "", nil, ErrUnsupportedSport
	}
	if _, ok := f.rates.Rate(parsed); !ok {
		return "", nil, ErrUnsupportedSport
	}

	details, err := validate(parsed, input)
	if err != nil {
		return "", nil, err
	}
	calories, err := f.Calories(parsed, details)
	if err != nil {
		return "", nil, err
	}
	if math.IsInf(calories, 0) || math.IsNaN(calories) {
		return "", nil, &ValidationError{Message: "Calories burned must be a finite number"}
	}
	details[FieldCaloriesBurned] = calories
	return parsed, details, nil
}

// Calories computes calories burned for validated details.
func (f Factory) Calories(sport Sport, details Details) (float64, error) {
	rate, ok := f.rates.Rate(sport)
	if !ok {
		return 0, ErrUnsupportedSport
	}
	switch sport.Measure() {
	case MeasureMinutes:
		minutes, ok := details.Float(FieldTime)
		if !ok {
			return 0, fmt.Errorf("%s details missing %s", sport, FieldTime)
		}
		return minutes * rate, nil
	case MeasureRepetitions:
		sets, ok := details.Float(FieldSets)
		if !ok {
			return 0, fmt.Errorf("%s details missing %s", sport, FieldSets)
		}
		reps, ok := details.Float(FieldRepsPerSet)
		if !ok {
			return 0, fmt.Errorf("%s details missing %s", sport, FieldRepsPerSet)
		}
		return sets * reps * rate, nil
	default:
		return 0, nil
	}
}

// requiredFields lists the fields each sport must carry, in message order.
func requiredFields(sport Sport) []string {
	switch sport {
	case SportRunning, SportSwimming, SportCycling:
		return []string{FieldTime, FieldDistance}
	case SportPullups, SportPushups:
		return []string{FieldSets, FieldRepsPerSet}
	case SportWeights:
		return []string{FieldExerciseType, FieldSets, FieldRepsPerSet}
	default:
		return nil
	}
}

func validate(sport Sport, input map[string]any) (Details, error) {
	fields := requiredFields(sport)
	for _, field := range fields {
		if _, ok := input[field]; !ok {
			return nil, &ValidationError{Message: missingFieldsMessage(sport, fields)}
		}
	}

	details := make(Details, len(fields)+1)
	for _, field := range fields {
		value := input[field]
		switch field {
		case FieldExerciseType:
			text, ok := value.(string)
			if !ok || strings.TrimSpace(text) == "" {
				return nil, &ValidationError{Message: fmt.Sprintf("'%s' must be a non-empty string", field)}
			}
			details[field] = strings.TrimSpace(text)
		case FieldSets, FieldRepsPerSet:
			number, ok := toFloat(value)
			if !ok || number < 0 || number != math.Trunc(number) {
				return nil, &ValidationError{Message: fmt.Sprintf("'%s' must be a non-negative whole number", field)}
			}
			details[field] = number
		default:
			number, ok := toFloat(value)
			if !ok || number < 0 {
				return nil, &ValidationError{Message: fmt.Sprintf("'%s' must be a non-negative number", field)}
			}
			details[field] = number
		}
	}
	return details, nil
}

func missingFieldsMessage(sport Sport, fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = "'" + field + "'"
	}
	var list string
	switch len(quoted) {
	case 2:
		list = quoted[0] + " and " + quoted[1]
	default:
		list = strings.Join(quoted[:len(quoted)-1], ", ") + ", and " + quoted[len(quoted)-1]
	}
	verb := "requires"
	switch sport {
	case SportPullups, SportPushups, SportWeights:
		verb = "require"
	}
	return fmt.Sprintf("%s %s %s", sport.Label(), verb, list)
}

func toFloat(value any) (float64, bool) {
	var number float64
	switch v := value.(type) {
	case float64:
		number = v
	case float32:
		number = float64(v)
	case int:
		number = float64(v)
	case int64:
		number = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		number = parsed
	default:
		return 0, false
	}
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, false
	}
	return number, true
}
