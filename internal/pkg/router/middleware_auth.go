package router

import (
	"crypto/subtle"
	"net/http"

	"github.com/shandysiswandi/gotp/internal/pkg/config"
)

// HeaderAPIKey carries the caller's API key on protected endpoints.
const HeaderAPIKey = "X-API-Key"

func middlewareAuthentication(cfg config.Config, publicEndpoints map[string]map[string]struct{}) Middleware {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.GetString("app.api_key")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			if s, ok := publicEndpoints[r.Method]; ok {
				if _, skip := s[path]; skip {
					next.ServeHTTP(w, r)
					return
				}
			}

			if apiKey == "" {
				writeJSON(w, errorResponse{Message: "API key is not configured"}, http.StatusUnauthorized)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if provided == "" {
				writeJSON(w, errorResponse{Message: "API key required"}, http.StatusUnauthorized)
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				writeJSON(w, errorResponse{Message: "Invalid API key"}, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
