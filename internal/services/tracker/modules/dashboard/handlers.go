package dashboard

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/trainingtracker/internal/services/tracker/platform/httpx"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/platform/pagerender"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/storage"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/templates"
)

const pageTitle = "Dashboard"

type exerciseLister interface {
	List(ctx context.Context) ([]storage.Exercise, error)
	Today() time.Time
}

type handlers struct {
	exercises exerciseLister
	logger    *log.Logger
}

func (h handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	records, err := h.exercises.List(httpx.RequestContext(r))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	formatter := templates.FormatterForRequest(r)
	view := buildView(formatter, records, h.exercises.Today())
	if err := pagerender.WritePage(w, r, pagerender.Page{
		Title:    pageTitle,
		Lang:     formatter.Lang(),
		Fragment: templates.Dashboard(view),
	}); err != nil && h.logger != nil {
		h.logger.Printf("render dashboard: %v", err)
	}
}
