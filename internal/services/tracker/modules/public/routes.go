package public

import (
	"net/http"

	"github.com/louisbranch/trainingtracker/internal/services/tracker/platform/httpx"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleRoot)
	mux.HandleFunc(routepath.Root+"{$}", httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(http.MethodGet+" "+routepath.Favicon, h.handleFavicon)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc("/{rest...}", h.handleNotFound)
}
