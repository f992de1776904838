// Package dashboard renders the HTML training dashboard.
package dashboard

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/trainingtracker/internal/services/tracker/module"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/routepath"
)

// Module renders recorded exercises as cards.
type Module struct{}

// New returns a dashboard module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires the dashboard route.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Training == nil {
		return module.Mount{}, errors.New("training service is required")
	}
	mux := http.NewServeMux()
	h := handlers{exercises: deps.Training, logger: deps.Logger}
	mux.HandleFunc(http.MethodGet+" "+routepath.Dashboard, h.handleDashboard)
	return module.Mount{
		Paths:   []string{routepath.Dashboard},
		Handler: mux,
	}, nil
}
