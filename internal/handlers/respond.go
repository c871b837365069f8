package handlers

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/pkg/errors"

	"careerkit/internal/services"
	"careerkit/internal/storage"
)

type errorBody struct {
	Error string `json:"error"`
}

func respond(w http.ResponseWriter, v interface{}, statusCode int) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "could not encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	w.Write(b)
}

// respondError maps the service error taxonomy onto status codes. Anything
// outside the taxonomy is an internal error and gets logged, not leaked.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, services.ErrUnauthenticated),
		errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrConflict):
		status = http.StatusConflict
	default:
		h.Log.WithError(err).Error("internal error")
		respond(w, errorBody{"internal server error"}, http.StatusInternalServerError)
		return
	}

	respond(w, errorBody{err.Error()}, status)
}

type pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int64 `json:"pages"`
}

func paginate(total int64, page, limit int) pagination {
	pages := int64(0)
	if limit > 0 {
		pages = int64(math.Ceil(float64(total) / float64(limit)))
	}
	return pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}
