package exercise

import "testing"

func TestParseSport(t *testing.T) {
	t.Parallel()

	for _, sport := range Sports() {
		got, ok := ParseSport(string(sport))
		if !ok || got != sport {
			t.Fatalf("ParseSport(%q) = %q, %t", sport, got, ok)
		}
	}
	if _, ok := ParseSport("yoga"); ok {
		t.Fatal("expected yoga to be unsupported")
	}
}

func TestSportMeasure(t *testing.T) {
	t.Parallel()

	minutes := []Sport{SportRunning, SportSwimming, SportCycling}
	reps := []Sport{SportPullups, SportPushups, SportWeights}
	for _, sport := range minutes {
		if sport.Measure() != MeasureMinutes {
			t.Fatalf("%s measure = %v, want minutes", sport, sport.Measure())
		}
	}
	for _, sport := range reps {
		if sport.Measure() != MeasureRepetitions {
			t.Fatalf("%s measure = %v, want repetitions", sport, sport.Measure())
		}
	}
}

func TestSportsReturnsCopy(t *testing.T) {
	t.Parallel()

	list := Sports()
	list[0] = "mutated"
	if Sports()[0] != SportRunning {
		t.Fatal("Sports() exposed internal slice")
	}
}
