package otel_test

import (
	"context"
	"strings"
	"testing"

	"github.com/louisbranch/trainingtracker/internal/platform/otel"
)

func TestSettingsActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings otel.Settings
		want     bool
	}{
		{name: "empty endpoint", settings: otel.Settings{}, want: false},
		{name: "endpoint set", settings: otel.Settings{Endpoint: "http://localhost:4318"}, want: true},
		{name: "explicitly disabled", settings: otel.Settings{Endpoint: "http://localhost:4318", Enabled: "FALSE"}, want: false},
		{name: "blank endpoint", settings: otel.Settings{Endpoint: "   "}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.settings.Active(); got != tc.want {
				t.Fatalf("Active() = %t, want %t", got, tc.want)
			}
		})
	}
}

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("TRAINING_TRACKER_OTEL_ENDPOINT", "")
	t.Setenv("TRAINING_TRACKER_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("TRAINING_TRACKER_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("TRAINING_TRACKER_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so nothing is exported.
	t.Setenv("TRAINING_TRACKER_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("TRAINING_TRACKER_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSettingsSampler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ratio float64
		want  string
	}{
		{ratio: 0, want: "ParentBased{root:AlwaysOnSampler"},
		{ratio: 1, want: "ParentBased{root:AlwaysOnSampler"},
		{ratio: 0.25, want: "ParentBased{root:TraceIDRatioBased{0.25}"},
	}
	for _, tc := range tests {
		got := otel.Settings{SampleRatio: tc.ratio}.Sampler().Description()
		if !strings.HasPrefix(got, tc.want) {
			t.Fatalf("Sampler(%v) = %q, want prefix %q", tc.ratio, got, tc.want)
		}
	}
}

func TestSetup_RejectsInvalidSampleRatio(t *testing.T) {
	t.Setenv("TRAINING_TRACKER_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("TRAINING_TRACKER_OTEL_SAMPLE_RATIO", "lots")

	if _, err := otel.Setup(context.Background(), "test-service"); err == nil {
		t.Fatal("expected error for invalid sample ratio")
	}
}
