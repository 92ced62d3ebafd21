package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/georgemunganga/emt-api/internal/platform/errs"
	"github.com/georgemunganga/emt-api/internal/platform/web"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// RequireBearer rejects requests without a valid "Authorization: Bearer"
// token and tags the request logger with the token's user id.
func RequireBearer(s Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if header == "" || token == header || token == "" {
				web.Error(w, r, fmt.Errorf("missing bearer token: %w", errs.ErrUnauthorized))
				return
			}

			userID, err := s.ParseToken(token)
			if err != nil {
				web.Error(w, r, err)
				return
			}

			hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("user_id", userID)
			})
			next.ServeHTTP(w, r)
		})
	}
}
