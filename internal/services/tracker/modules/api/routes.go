package api

import (
	"net/http"

	"github.com/louisbranch/trainingtracker/internal/services/tracker/platform/httpx"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.Add, h.handleAdd)
	mux.HandleFunc(routepath.Add, httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(http.MethodGet+" "+routepath.Get, h.handleList)
	mux.HandleFunc(routepath.Get, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(http.MethodGet+" "+routepath.GetByID, h.handleGet)
	mux.HandleFunc(routepath.GetByID, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(routepath.GetPrefix, h.handleNotFound)
}
