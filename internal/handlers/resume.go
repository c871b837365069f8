package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/matryer/way"

	"careerkit/internal/ai"
	"careerkit/internal/models"
)

func (h *Handler) listResumes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := intParam(q.Get("page"), 1)
	limit := intParam(q.Get("limit"), 6)

	resumes, total, err := h.ListResumes(r.Context(), page, limit)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]interface{}{
		"resumes":    resumes,
		"pagination": paginate(total, page, limit),
	}, http.StatusOK)
}

func (h *Handler) saveResume(w http.ResponseWriter, r *http.Request) {
	var in models.Resume
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resume, err := h.SaveResume(r.Context(), in)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]interface{}{"resume": resume}, http.StatusCreated)
}

func (h *Handler) deleteResume(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.DeleteResume(ctx, way.Param(ctx, "resumeId")); err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]string{"message": "resume deleted successfully"}, http.StatusOK)
}

type generateResumeInput struct {
	PersonalInfo    models.PersonalInfo     `json:"personalInfo"`
	Education       []models.EducationItem  `json:"education"`
	Experience      []models.ExperienceItem `json:"experience"`
	Projects        []models.ProjectItem    `json:"projects"`
	Links           []models.LinkItem       `json:"links"`
	Skills          string                  `json:"skills"`
	ExtraCurricular string                  `json:"extraCurricular"`
}

func (h *Handler) generateResume(w http.ResponseWriter, r *http.Request) {
	var in generateResumeInput
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	generated, err := h.GenerateResume(r.Context(), ai.ResumeInput{
		PersonalInfo:    in.PersonalInfo,
		Education:       in.Education,
		Experience:      in.Experience,
		Projects:        in.Projects,
		Links:           in.Links,
		Skills:          in.Skills,
		ExtraCurricular: in.ExtraCurricular,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond(w, map[string]interface{}{"data": generated}, http.StatusOK)
}
