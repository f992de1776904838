package public

import (
	"io"
	"net/http"

	apperrors "github.com/louisbranch/trainingtracker/internal/services/tracker/platform/errors"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/platform/httpx"
)

// WelcomeMessage is the body of the root endpoint.
const WelcomeMessage = "Welcome to the Training Tracker API! Use /add to add data and /get to view records."

type handlers struct{}

type messageBody struct {
	Message string `json:"message"`
}

func (handlers) handleRoot(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, messageBody{Message: WelcomeMessage})
}

func (handlers) handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (handlers) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSONError(w, apperrors.E(apperrors.KindNotFound, "Not found"))
}
