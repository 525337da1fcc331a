package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rentcredit/rentcredit/internal/session"
)

type Handler struct {
	svc *session.Service
}

func NewHandler(svc *session.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/signup", h.signUp)
	r.Post("/signin", h.signIn)
	r.Post("/logout", h.logout)
	r.Get("/me", h.me)
}

type signRequest struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type signResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type signFunc func(ctx context.Context, role session.Role, user session.User) (string, error)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	h.sign(w, r, h.svc.SignUp)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	h.sign(w, r, h.svc.SignIn)
}

func (h *Handler) sign(w http.ResponseWriter, r *http.Request, fn signFunc) {
	var req signRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	token, err := fn(r.Context(), session.Role(req.Role), session.User{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		if errors.Is(err, session.ErrUnknownRole) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(signResponse{
		Token: token,
		Role:  req.Role,
		Name:  req.Name,
		Email: req.Email,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type meResponse struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	role, user, err := h.svc.Current()
	if err != nil {
		if errors.Is(err, session.ErrNotSignedIn) {
			http.Error(w, "not signed in", http.StatusUnauthorized)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(meResponse{
		Role:  string(role),
		Name:  user.Name,
		Email: user.Email,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
