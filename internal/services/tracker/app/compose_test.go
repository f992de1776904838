package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/louisbranch/trainingtracker/internal/services/tracker/module"
)

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount(module.Dependencies) (module.Mount, error) {
	return m.mount, m.err
}

func statusHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
}

func TestComposeRejectsDuplicatePath(t *testing.T) {
	t.Parallel()

	_, err := Composer{}.Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Paths: []string{"/one"}, Handler: statusHandler(http.StatusOK)}},
			stubModule{id: "two", mount: module.Mount{Paths: []string{"one"}, Handler: statusHandler(http.StatusOK)}},
		},
	})
	if err == nil {
		t.Fatal("expected duplicate path error")
	}
}

func TestComposeRejectsInvalidModules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		feature module.Module
	}{
		{name: "nil", feature: nil},
		{name: "mount error", feature: stubModule{id: "broken", err: errors.New("boom")}},
		{name: "nil handler", feature: stubModule{id: "empty", mount: module.Mount{Paths: []string{"/x"}}}},
		{name: "no paths", feature: stubModule{id: "nopaths", mount: module.Mount{Handler: statusHandler(http.StatusOK)}}},
		{name: "blank path", feature: stubModule{id: "blank", mount: module.Mount{Paths: []string{" "}, Handler: statusHandler(http.StatusOK)}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Composer{}).Compose(ComposeInput{Modules: []module.Module{tc.feature}}); err == nil {
				t.Fatal("expected compose error")
			}
		})
	}
}

func TestComposeRoutesToOwningModule(t *testing.T) {
	t.Parallel()

	h, err := Composer{}.Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "root", mount: module.Mount{Paths: []string{"/"}, Handler: statusHandler(http.StatusNotFound)}},
			stubModule{id: "items", mount: module.Mount{Paths: []string{"/items", "/items/"}, Handler: statusHandler(http.StatusNoContent)}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := map[string]int{
		"/items":   http.StatusNoContent,
		"/items/1": http.StatusNoContent,
		"/other":   http.StatusNotFound,
	}
	for path, want := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != want {
			t.Fatalf("%s status = %d, want %d", path, rr.Code, want)
		}
	}
}
