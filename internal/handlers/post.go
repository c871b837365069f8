package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/matryer/way"

	"careerkit/internal/models"
)

type postInput struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := intParam(q.Get("page"), 1)
	limit := intParam(q.Get("limit"), 10)
	filter := models.PostFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}

	posts, total, err := h.ListPosts(r.Context(), filter, page, limit)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]interface{}{
		"posts":      posts,
		"pagination": paginate(total, page, limit),
	}, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	post, err := h.GetPost(ctx, way.Param(ctx, "postId"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]interface{}{"post": post}, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var in postInput
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.CreatePost(r.Context(), in.Title, in.Content, in.Category, in.Tags)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]interface{}{"post": post}, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	var in postInput
	defer r.Body.Close()
	ctx := r.Context()
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.UpdatePost(ctx, way.Param(ctx, "postId"), in.Title, in.Content, in.Category, in.Tags)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]interface{}{"post": post}, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.DeletePost(ctx, way.Param(ctx, "postId")); err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]string{"message": "post deleted successfully"}, http.StatusOK)
}

type toggleLikeInput struct {
	PostID string `json:"postId"`
}

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	var in toggleLikeInput
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	likes, err := h.TogglePostLike(r.Context(), in.PostID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]interface{}{"likes": likes}, http.StatusOK)
}

func intParam(s string, fallbackValue int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallbackValue
	}
	return n
}
