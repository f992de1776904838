package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/trainingtracker/internal/services/tracker/platform/errors"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/platform/httpx"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/storage"
)

const (
	maxBodyBytes = 1 << 20

	addedMessage = "Exercise added successfully!"
)

type exerciseService interface {
	Record(ctx context.Context, sport string, input map[string]any) (storage.Exercise, error)
	Get(ctx context.Context, id int64) (storage.Exercise, error)
	List(ctx context.Context) ([]storage.Exercise, error)
}

type handlers struct {
	exercises exerciseService
}

func newHandlers(exercises exerciseService) handlers {
	return handlers{exercises: exercises}
}

type addResponse struct {
	Message        string         `json:"message"`
	Exercise       map[string]any `json:"exercise"`
	CaloriesBurned float64        `json:"calories_burned"`
}

type exerciseBody struct {
	ID             int64          `json:"id"`
	Date           string         `json:"date"`
	Sport          string         `json:"sport"`
	Details        map[string]any `json:"details"`
	CaloriesBurned float64        `json:"calories_burned"`
}

func toExerciseBody(record storage.Exercise) exerciseBody {
	details := map[string]any(record.Details)
	if details == nil {
		details = map[string]any{}
	}
	return exerciseBody{
		ID:             record.ID,
		Date:           record.Date.Format(storage.DateLayout),
		Sport:          string(record.Sport),
		Details:        details,
		CaloriesBurned: record.CaloriesBurned,
	}
}

func (h handlers) handleAdd(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput(w, r)
	if err != nil {
		_ = httpx.WriteJSONError(w, err)
		return
	}
	sport, _ := input["sport"].(string)

	record, err := h.exercises.Record(httpx.RequestContext(r), strings.TrimSpace(sport), input)
	if err != nil {
		_ = httpx.WriteJSONError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusCreated, addResponse{
		Message:        addedMessage,
		Exercise:       record.Details,
		CaloriesBurned: record.CaloriesBurned,
	})
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.exercises.List(httpx.RequestContext(r))
	if err != nil {
		_ = httpx.WriteJSONError(w, err)
		return
	}
	body := make([]exerciseBody, 0, len(records))
	for _, record := range records {
		body = append(body, toExerciseBody(record))
	}
	_ = httpx.WriteJSON(w, http.StatusOK, body)
}

func (h handlers) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = httpx.WriteJSONError(w, apperrors.E(apperrors.KindNotFound, "Exercise not found"))
		return
	}
	record, err := h.exercises.Get(httpx.RequestContext(r), id)
	if err != nil {
		_ = httpx.WriteJSONError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, toExerciseBody(record))
}

// handleNotFound covers paths under /get/ that carry no single id segment.
func (handlers) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSONError(w, apperrors.E(apperrors.KindNotFound, "Not found"))
}

// decodeInput reads the request body as a JSON object.
func decodeInput(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	if r.Body == nil {
		return nil, apperrors.E(apperrors.KindInvalidInput, "Request body must be a JSON object")
	}
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	var input map[string]any
	if err := decoder.Decode(&input); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalidInput, "Request body must be a JSON object", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, apperrors.Wrap(apperrors.KindInvalidInput, "Request body must be a JSON object", err)
	}
	if input == nil {
		input = map[string]any{}
	}
	return input, nil
}
