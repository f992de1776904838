// Package pagerender writes tracker pages for full-page and HTMX requests.
package pagerender

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/platform/httpx"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/templates"
)

// Page describes one page response.
type Page struct {
	Title      string
	Lang       string
	StatusCode int
	Fragment   templ.Component
}

// WritePage renders page. HTMX requests get only the main fragment, prefixed
// with a <title> so the browser title follows navigation.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}
	ctx := httpx.RequestContext(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if httpx.IsHTMXRequest(r) {
		if err := templates.PageTitle(page.Title).Render(ctx, w); err != nil {
			return err
		}
		return templates.MainContent(page.Title).Render(templ.WithChildren(ctx, fragment), w)
	}
	return templates.Layout(page.Title, page.Lang).Render(templ.WithChildren(ctx, fragment), w)
}

