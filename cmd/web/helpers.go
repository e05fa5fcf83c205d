package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ParkChanH/project-anchovy/internal/contexthelpers"
	"github.com/ParkChanH/project-anchovy/internal/diary"
	"github.com/ParkChanH/project-anchovy/internal/errors"
	"github.com/ParkChanH/project-anchovy/internal/profile"
	"github.com/ParkChanH/project-anchovy/internal/trainer"
)

const maxRequestBody = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// readJSON decodes the request body into dst, responding with 400 on failure.
func (app *application) readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "failed to process request, please try again"})
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.logger.LogAttrs(r.Context(), slog.LevelDebug, "client error",
		slog.Int("status_code", status), slog.String("message", message))
	app.writeJSON(w, r, status, errorResponse{Error: message})
}

// respondError maps domain errors to HTTP statuses.
func (app *application) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, profile.ErrInvalidUpdate),
		errors.Is(err, diary.ErrInvalidEntry),
		errors.Is(err, trainer.ErrInvalidAction),
		errors.Is(err, trainer.ErrInvalidMessage):
		app.clientError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, profile.ErrNotFound), errors.Is(err, diary.ErrNoRecords):
		app.clientError(w, r, http.StatusNotFound, err.Error())
	default:
		app.serverError(w, r, err)
	}
}

func currentUserID(r *http.Request) string {
	return contexthelpers.UserID(r.Context())
}

// parseDateParam parses the "date" path parameter from the request URL.
// On failure, sends HTTP 400 response automatically.
func (app *application) parseDateParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	dateStr := r.PathValue("date")
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}
