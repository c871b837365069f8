package handlers

import (
	"encoding/json"
	"net/http"

	"careerkit/internal/services"
)

type createCommentInput struct {
	Content         string `json:"content"`
	PostID          string `json:"postId"`
	ParentCommentID string `json:"parentCommentId"`
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	comments, err := h.ListComments(r.Context(), q.Get("postId"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	order := services.SortNewest
	if q.Get("sort") == string(services.SortOldest) {
		order = services.SortOldest
	}

	respond(w, map[string]interface{}{
		"comments": comments,
		"threads":  services.BuildThread(comments, order),
	}, http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	var in createCommentInput
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.AddComment(r.Context(), in.PostID, in.Content, in.ParentCommentID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]interface{}{"comment": comment}, http.StatusCreated)
}
