// Package middleware provides HTTP middleware for the sleep calculator API.
package middleware

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
)

// CORS returns middleware that handles CORS headers.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	// Credentials are only allowed for explicit origins.
	wildcard := slices.Contains(allowedOrigins, "*")

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: !wildcard,
		MaxAge:           300,
	})
}
