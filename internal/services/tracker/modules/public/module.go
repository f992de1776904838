// Package public serves the unauthenticated API entry points.
package public

import (
	"net/http"

	module "github.com/louisbranch/trainingtracker/internal/services/tracker/module"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/routepath"
)

// Module serves the welcome message, favicon and health check.
type Module struct{}

// New returns a public module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires the public routes.
func (Module) Mount(module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{})
	return module.Mount{
		Paths:   []string{routepath.Root, routepath.Favicon, routepath.Health},
		Handler: mux,
	}, nil
}
