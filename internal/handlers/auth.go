package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"careerkit/internal/services"
)

const tokenCookie = "auth_token"

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out, err := h.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		h.respondError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    out.Token,
		Path:     "/",
		Expires:  out.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond(w, out, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	respond(w, map[string]string{"message": "logged out"}, http.StatusOK)
}

func (h *Handler) authUser(w http.ResponseWriter, r *http.Request) {
	identity, err := h.AuthUser(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	respond(w, map[string]interface{}{"user": identity}, http.StatusOK)
}

// withAuth resolves the session credential into an identity on the request
// context. Resolution failures are silent: the request continues as
// anonymous and each operation decides whether it needs a user.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token string
		if cookie, err := r.Cookie(tokenCookie); err == nil {
			token = cookie.Value
		} else if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = auth[7:]
		}

		identity := h.ResolveIdentity(token)
		if identity == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), services.KeyAuthIdentity, *identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
