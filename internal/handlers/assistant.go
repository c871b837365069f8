package handlers

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) assistant(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Message string `json:"message"`
	}
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reply, err := h.Chat(r.Context(), in.Message)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]string{"response": reply}, http.StatusOK)
}

func (h *Handler) practice(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Topic string `json:"topic"`
	}
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	challenge, err := h.GenerateChallenge(r.Context(), in.Topic)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]interface{}{"challenge": challenge}, http.StatusOK)
}
