package templates

import "strconv"

// DashboardView is the data behind the dashboard page.
type DashboardView struct {
	Summary   SummaryView
	Exercises []ExerciseView
}

// SummaryView totals every recorded exercise.
type SummaryView struct {
	Count         string
	TotalCalories string
	Sports        []SportTotalView
}

// SportTotalView is one row of the per-sport breakdown.
type SportTotalView struct {
	Sport    string
	Count    string
	Calories string
}

// ExerciseView is one exercise card.
type ExerciseView struct {
	ID       int64
	Sport    string
	Date     string
	Relative string
	Calories string
	Facts    []FactView
}

// FactView is one labelled detail value.
type FactView struct {
	Label string
	Value string
}

func exerciseID(id int64) string {
	return "exercise-" + strconv.FormatInt(id, 10)
}
