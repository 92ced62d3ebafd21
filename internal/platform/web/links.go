package web

import (
	"context"
	"net/http"
	"strings"
)

type baseURLKey struct{}

// BaseURL pins the scheme and host used for hyperlinks. With an empty base
// the links are derived from each request instead.
func BaseURL(base string) func(http.Handler) http.Handler {
	base = strings.TrimRight(base, "/")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if base != "" {
				r = r.WithContext(context.WithValue(r.Context(), baseURLKey{}, base))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Linker builds absolute resource URLs.
type Linker struct{ base string }

// LinkerFrom returns the Linker for a request. Without a pinned base the
// Host header and X-Forwarded-Proto are taken from the client, so deployments
// behind proxies that do not sanitise them should set PUBLIC_BASE_URL.
// X-Forwarded-Proto values other than http and https are ignored.
func LinkerFrom(r *http.Request) Linker {
	if base, ok := r.Context().Value(baseURLKey{}).(string); ok {
		return Linker{base: base}
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		switch p := strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0])); p {
		case "http", "https":
			scheme = p
		}
	}
	return Linker{base: scheme + "://" + r.Host}
}

// URL joins the path segments under APIPrefix, e.g. URL("payments", id).
func (l Linker) URL(segments ...string) string {
	return l.base + APIPrefix + "/" + strings.Join(segments, "/")
}
