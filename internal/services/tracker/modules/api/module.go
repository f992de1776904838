// Package api serves the JSON exercise endpoints.
package api

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/trainingtracker/internal/services/tracker/module"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/routepath"
)

// Module records and lists exercises over JSON.
type Module struct{}

// New returns an api module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "api" }

// Mount wires the exercise routes.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Training == nil {
		return module.Mount{}, errors.New("training service is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps.Training))
	return module.Mount{
		Paths:   []string{routepath.Add, routepath.Get, routepath.GetPrefix},
		Handler: mux,
	}, nil
}
