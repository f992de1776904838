package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid input", err: E(KindInvalidInput, "bad"), want: http.StatusBadRequest},
		{name: "not found", err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{name: "unavailable", err: E(KindUnavailable, "down"), want: http.StatusServiceUnavailable},
		{name: "unknown", err: E(KindUnknown, "boom"), want: http.StatusInternalServerError},
		{name: "untyped", err: stderrors.New("raw"), want: http.StatusInternalServerError},
		{name: "wrapped typed", err: fmt.Errorf("outer: %w", E(KindNotFound, "missing")), want: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	t.Parallel()

	if got := (Error{Kind: KindNotFound}).Error(); got != "not_found" {
		t.Fatalf("Error() = %q, want kind fallback", got)
	}
	if got := (Error{Kind: KindUnknown, Err: stderrors.New("disk full")}).Error(); got != "disk full" {
		t.Fatalf("Error() = %q, want cause fallback", got)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("disk full")
	err := Wrap(KindUnknown, "An unexpected error occurred", cause)
	if !stderrors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to be reachable")
	}
	if err.Error() != "An unexpected error occurred" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if got := Cause(err); got != "disk full" {
		t.Fatalf("Cause() = %q, want %q", got, "disk full")
	}
	if got := Cause(E(KindInvalidInput, "bad")); got != "" {
		t.Fatalf("Cause() = %q, want empty", got)
	}
	if got := Cause(stderrors.New("raw")); got != "raw" {
		t.Fatalf("Cause() = %q, want raw", got)
	}
	if got := KindOf(stderrors.New("raw")); got != KindUnknown {
		t.Fatalf("KindOf() = %q, want %q", got, KindUnknown)
	}
}
