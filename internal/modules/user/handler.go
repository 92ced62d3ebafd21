package user

import (
	"net/http"

	"github.com/georgemunganga/emt-api/internal/platform/web"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the endpoints reachable without a token.
func (h *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Post("/users/register", h.registerUser)
}

// RegisterRoutes mounts the endpoints that sit behind authentication when it is enabled.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/users/{id}", h.getUser)
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := web.Decode(r, &req); err != nil {
		web.Error(w, r, err)
		return
	}

	user, err := h.service.RegisterUser(r.Context(), req)
	if err != nil {
		web.Error(w, r, err)
		return
	}

	web.Respond(w, http.StatusCreated, user)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, r, err)
		return
	}

	web.Respond(w, http.StatusOK, user)
}
