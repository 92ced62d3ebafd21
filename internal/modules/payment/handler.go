package payment

import (
	"net/http"

	"github.com/georgemunganga/emt-api/internal/platform/web"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

// Handler exposes payment HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Get("/", h.list) // ?customer=...
		r.Post("/", h.create)
		r.Get("/{id}", h.retrieve)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.destroy)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var filter ListFilter
	customerID, ok, err := web.QueryUUID(r, "customer")
	if err != nil {
		web.Error(w, r, err)
		return
	}
	if ok {
		filter.CustomerID = &customerID
	}
	payments, err := h.service.ListPayments(r.Context(), filter)
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, newPaymentResources(payments, web.LinkerFrom(r)))
}

func (h *Handler) retrieve(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetPayment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, newPaymentResource(p, web.LinkerFrom(r)))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := web.Decode(r, &req); err != nil {
		web.Error(w, r, err)
		return
	}
	p, err := h.service.CreatePayment(r.Context(), req)
	if err != nil {
		web.Error(w, r, err)
		return
	}
	hlog.FromRequest(r).Info().
		Str("payment_id", p.ID.String()).
		Str("customer_id", p.CustomerID.String()).
		Msg("payment created")
	web.Respond(w, http.StatusOK, newPaymentResource(p, web.LinkerFrom(r)))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdatePaymentRequest
	if err := web.Decode(r, &req); err != nil {
		web.Error(w, r, err)
		return
	}
	if err := h.service.UpdatePayment(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		web.Error(w, r, err)
		return
	}
	web.NoContent(w)
}

func (h *Handler) destroy(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePayment(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.Error(w, r, err)
		return
	}
	web.NoContent(w)
}
