package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/matryer/way"

	"careerkit/internal/models"
)

type roadmapInput struct {
	JobTitle       string `json:"jobTitle"`
	Level          string `json:"level"`
	TimeRange      string `json:"timeRange"`
	RoadmapContent string `json:"roadmapContent"`
}

func (h *Handler) listRoadmaps(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := intParam(q.Get("page"), 1)
	limit := intParam(q.Get("limit"), 6)

	filter := models.RoadmapFilter{
		JobTitle: q.Get("jobTitle"),
		Level:    q.Get("level"),
		Mine:     q.Get("myRoadmaps") == "true",
	}

	roadmaps, total, err := h.ListRoadmaps(r.Context(), filter, page, limit)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]interface{}{
		"roadmaps":   roadmaps,
		"pagination": paginate(total, page, limit),
	}, http.StatusOK)
}

func (h *Handler) getRoadmap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	roadmap, err := h.GetRoadmap(ctx, way.Param(ctx, "roadmapId"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]interface{}{"roadmap": roadmap}, http.StatusOK)
}

func (h *Handler) saveRoadmap(w http.ResponseWriter, r *http.Request) {
	var in roadmapInput
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	roadmap, err := h.SaveRoadmap(r.Context(), in.JobTitle, in.Level, in.TimeRange, in.RoadmapContent)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]interface{}{"roadmap": roadmap}, http.StatusCreated)
}

func (h *Handler) deleteRoadmap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.DeleteRoadmap(ctx, way.Param(ctx, "roadmapId")); err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]string{"message": "roadmap deleted successfully"}, http.StatusOK)
}

func (h *Handler) generateRoadmap(w http.ResponseWriter, r *http.Request) {
	var in roadmapInput
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	content, err := h.GenerateRoadmap(r.Context(), in.JobTitle, in.Level, in.TimeRange)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]string{"roadmap": content}, http.StatusOK)
}
