package web

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health answers 200 while db responds to a ping and 503 otherwise.
func Health(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("health check failed")
			Respond(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		Respond(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
