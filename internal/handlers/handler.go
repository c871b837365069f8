package handlers

import (
	"fmt"
	"net/http"

	"github.com/matryer/way"

	"careerkit/internal/services"
)

type Handler struct {
	*services.Service
}

// New creates new HTTP handler
func New(s *services.Service) http.Handler {
	h := &Handler{s}

	api := way.NewRouter()

	// Auth routes
	api.HandleFunc("POST", "/register", h.register)
	api.HandleFunc("POST", "/login", h.login)
	api.HandleFunc("POST", "/logout", h.logout)
	api.HandleFunc("GET", "/auth_user", h.authUser)

	// Post routes
	api.HandleFunc("GET", "/posts", h.listPosts)
	api.HandleFunc("POST", "/posts", h.createPost)
	api.HandleFunc("GET", "/posts/:postId", h.getPost)
	api.HandleFunc("PUT", "/posts/:postId", h.updatePost)
	api.HandleFunc("DELETE", "/posts/:postId", h.deletePost)
	api.HandleFunc("POST", "/likes", h.toggleLike)

	// Comment routes
	api.HandleFunc("GET", "/comments", h.listComments)
	api.HandleFunc("POST", "/comments", h.createComment)

	// Resume routes
	api.HandleFunc("GET", "/resumes", h.listResumes)
	api.HandleFunc("POST", "/resumes", h.saveResume)
	api.HandleFunc("DELETE", "/resumes/:resumeId", h.deleteResume)
	api.HandleFunc("POST", "/generate/resume", h.generateResume)

	// Roadmap routes
	api.HandleFunc("GET", "/roadmaps", h.listRoadmaps)
	api.HandleFunc("POST", "/roadmaps", h.saveRoadmap)
	api.HandleFunc("GET", "/roadmaps/:roadmapId", h.getRoadmap)
	api.HandleFunc("DELETE", "/roadmaps/:roadmapId", h.deleteRoadmap)
	api.HandleFunc("POST", "/generate/roadmap", h.generateRoadmap)

	// Assistant routes
	api.HandleFunc("POST", "/assistant", h.assistant)
	api.HandleFunc("POST", "/practice", h.practice)

	r := way.NewRouter()
	r.HandleFunc("GET", "/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "OK")
	})
	r.Handle("*", "/api...", http.StripPrefix("/api", h.withLog(h.withAuth(api))))

	return r
}
