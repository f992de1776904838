// Package exercise validates training entries and computes calories burned.
package exercise

// Sport identifies a supported training activity.
type Sport string

const (
	SportRunning  Sport = "running"
	SportSwimming Sport = "swimming"
	SportCycling  Sport = "cycling"
	SportPullups  Sport = "pullups"
	SportPushups  Sport = "pushups"
	SportWeights  Sport = "weights"
)

// Measure describes what a sport's calorie rate is multiplied by.
type Measure int

const (
	// MeasureMinutes rates are calories per minute of activity.
	MeasureMinutes Measure = iota
	// MeasureRepetitions rates are calories per repetition.
	MeasureRepetitions
)

// Detail field names shared by request payloads and stored details.
const (
	FieldTime           = "time"
	FieldDistance       = "distance"
	FieldSets           = "sets"
	FieldRepsPerSet     = "reps_per_set"
	FieldExerciseType   = "exercise_type"
	FieldCaloriesBurned = "calories_burned"
)

var sports = []Sport{
	SportRunning,
	SportSwimming,
	SportCycling,
	SportPullups,
	SportPushups,
	SportWeights,
}

// Sports returns every supported sport in display order.
func Sports() []Sport {
	out := make([]Sport, len(sports))
	copy(out, sports)
	return out
}

// ParseSport resolves a raw sport name.
func ParseSport(raw string) (Sport, bool) {
	for _, sport := range sports {
		if string(sport) == raw {
			return sport, true
		}
	}
	return "", false
}

// Measure reports how the sport's rate applies.
func (s Sport) Measure() Measure {
	switch s {
	case SportPullups, SportPushups, SportWeights:
		return MeasureRepetitions
	default:
		return MeasureMinutes
	}
}

// Label returns the display name used in messages and pages.
func (s Sport) Label() string {
	switch s {
	case SportRunning:
		return "Running"
	case SportSwimming:
		return "Swimming"
	case SportCycling:
		return "Cycling"
	case SportPullups:
		return "Pull-ups"
	case SportPushups:
		return "Push-ups"
	case SportWeights:
		return "Weights"
	default:
		return string(s)
	}
}
