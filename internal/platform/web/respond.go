// Package web holds the HTTP plumbing shared by the resource handlers:
// JSON responses, the error policy, input decoding and hyperlink building.
package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/georgemunganga/emt-api/internal/platform/errs"
	"github.com/rs/zerolog/hlog"
)

// APIPrefix is the path every resource collection is mounted under.
const APIPrefix = "/api/v1"

// Respond writes body as JSON with the given status.
func Respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error maps err onto its HTTP status. Unclassified errors are logged and
// answered with a generic 500 so driver messages never reach the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		body := map[string]interface{}{"error": verr.Message}
		if len(verr.Fields) > 0 {
			body["fields"] = verr.Fields
		}
		Respond(w, http.StatusBadRequest, body)
	case errors.Is(err, errs.ErrUnauthorized):
		Respond(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, errs.ErrNotFound):
		Respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, errs.ErrConflict):
		Respond(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, errs.ErrInvalidReference):
		Respond(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		hlog.FromRequest(r).Error().Err(err).
			Str("method", r.Method).
			Str("url", r.URL.String()).
			Msg("request failed")
		Respond(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
