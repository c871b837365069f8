package handlers

import (
	"encoding/json"
	"net/http"
)

type registerInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Register(r.Context(), in.Username, in.Email, in.Password); err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]string{"message": "user registered successfully"}, http.StatusCreated)
}
