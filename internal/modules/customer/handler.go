package customer

import (
	"net/http"

	"github.com/georgemunganga/emt-api/internal/platform/web"
	"github.com/go-chi/chi/v5"
)

// Handler exposes customer HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.list) // ?user=...
		r.Post("/", h.create)
		r.Get("/{id}", h.retrieve)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.destroy)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var filter ListFilter
	userID, ok, err := web.QueryUUID(r, "user")
	if err != nil {
		web.Error(w, r, err)
		return
	}
	if ok {
		filter.UserID = &userID
	}
	customers, err := h.service.ListCustomers(r.Context(), filter)
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, newCustomerResources(customers, web.LinkerFrom(r)))
}

func (h *Handler) retrieve(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, newCustomerResource(c, web.LinkerFrom(r)))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := web.Decode(r, &req); err != nil {
		web.Error(w, r, err)
		return
	}
	c, err := h.service.CreateCustomer(r.Context(), req)
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, newCustomerResource(c, web.LinkerFrom(r)))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCustomerRequest
	if err := web.Decode(r, &req); err != nil {
		web.Error(w, r, err)
		return
	}
	if err := h.service.UpdateCustomer(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		web.Error(w, r, err)
		return
	}
	web.NoContent(w)
}

func (h *Handler) destroy(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCustomer(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.Error(w, r, err)
		return
	}
	web.NoContent(w)
}
