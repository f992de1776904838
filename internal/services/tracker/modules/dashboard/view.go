package dashboard

import (
	"time"

	"github.com/louisbranch/trainingtracker/internal/services/tracker/exercise"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/storage"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/templates"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/training"
)

type factField struct {
	field string
	label string
	unit  string
}

var factFields = []factField{
	{field: exercise.FieldExerciseType, label: "Exercise"},
	{field: exercise.FieldTime, label: "Time", unit: " min"},
	{field: exercise.FieldDistance, label: "Distance", unit: " km"},
	{field: exercise.FieldSets, label: "Sets"},
	{field: exercise.FieldRepsPerSet, label: "Reps per set"},
}

// buildView maps records to the dashboard view, newest first.
func buildView(f templates.Formatter, records []storage.Exercise, today time.Time) templates.DashboardView {
	summary := training.Summarize(records)
	view := templates.DashboardView{
		Summary: templates.SummaryView{
			Count:         f.Count(summary.Count),
			TotalCalories: f.Calories(summary.Calories),
		},
		Exercises: make([]templates.ExerciseView, 0, len(records)),
	}
	for _, total := range summary.BySport {
		view.Summary.Sports = append(view.Summary.Sports, templates.SportTotalView{
			Sport:    total.Sport.Label(),
			Count:    f.Count(total.Count),
			Calories: f.Calories(total.Calories),
		})
	}
	for i := len(records) - 1; i >= 0; i-- {
		view.Exercises = append(view.Exercises, exerciseView(f, records[i], today))
	}
	return view
}

func exerciseView(f templates.Formatter, record storage.Exercise, today time.Time) templates.ExerciseView {
	item := templates.ExerciseView{
		ID:       record.ID,
		Sport:    record.Sport.Label(),
		Date:     record.Date.Format(storage.DateLayout),
		Relative: f.RelativeDay(record.Date, today),
		Calories: f.Calories(record.CaloriesBurned),
	}
	for _, fact := range factFields {
		if text, ok := record.Details.String(fact.field); ok {
			item.Facts = append(item.Facts, templates.FactView{Label: fact.label, Value: text})
			continue
		}
		if number, ok := record.Details.Float(fact.field); ok {
			item.Facts = append(item.Facts, templates.FactView{Label: fact.label, Value: f.Number(number) + fact.unit})
		}
	}
	return item
}
