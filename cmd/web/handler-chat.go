package main

import (
	"encoding/json"
	"net/http"

	"github.com/ParkChanH/project-anchovy/internal/trainer"
)

// requireTrainer responds with 503 when the chat-completion endpoint is not
// configured.
func (app *application) requireTrainer(w http.ResponseWriter, r *http.Request) bool {
	if app.trainerService == nil {
		app.clientError(w, r, http.StatusServiceUnavailable, "AI trainer is not configured")
		return false
	}
	return true
}

func (app *application) chatPOST(w http.ResponseWriter, r *http.Request) {
	if !app.requireTrainer(w, r) {
		return
	}
	var input struct {
		Messages []trainer.Message `json:"messages"`
	}
	if !app.readJSON(w, r, &input) {
		return
	}
	reply, err := app.trainerService.Chat(r.Context(), currentUserID(r), input.Messages)
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, reply)
}

type greetingResponse struct {
	Greeting     string   `json:"greeting"`
	QuickReplies []string `json:"quick_replies"`
}

func (app *application) greetingGET(w http.ResponseWriter, r *http.Request) {
	if !app.requireTrainer(w, r) {
		return
	}
	greeting, err := app.trainerService.Greeting(r.Context(), currentUserID(r))
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, greetingResponse{
		Greeting:     greeting,
		QuickReplies: trainer.QuickReplies("greeting"),
	})
}

func (app *application) quickRepliesGET(w http.ResponseWriter, r *http.Request) {
	replies := trainer.QuickReplies(r.URL.Query().Get("context"))
	app.writeJSON(w, r, http.StatusOK, struct {
		QuickReplies []string `json:"quick_replies"`
	}{QuickReplies: replies})
}

// actionPOST executes one action the user confirmed from a chat reply.
// Execution is local, so it works even when the chat model is unconfigured.
func (app *application) actionPOST(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Action json.RawMessage `json:"action"`
	}
	if !app.readJSON(w, r, &input) {
		return
	}
	action, err := trainer.ParseAction(input.Action)
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	result, err := trainer.Execute(r.Context(), app.profileService, currentUserID(r), action)
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, result)
}
