// Package module defines the contract tracker feature modules implement.
package module

import (
	"log"
	"net/http"

	"github.com/louisbranch/trainingtracker/internal/services/tracker/training"
)

// Dependencies carries the shared services modules build their handlers on.
type Dependencies struct {
	Training *training.Service
	Logger   *log.Logger
}

// Mount is the result of mounting a module: the handler and the root paths
// it owns. Paths ending in "/" own their subtree.
type Mount struct {
	Paths   []string
	Handler http.Handler
}

// Module is one mountable feature area.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
