package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"travelindia-backend/internal/session"
)

type contextKey string

const UserContextKey contextKey = "user"

// Auth validates the bearer token through the session provider and puts the
// identity claims on the request context.
func Auth(provider *session.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := provider.Verify(parts[1])
			if err != nil {
				log.Printf("❌ Invalid token: %v", err)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth attaches identity claims when a valid bearer token is
// present but lets anonymous requests through. The booking handlers use it
// so an unauthenticated submit can fail inside the workflow with a sign-in
// redirect instead of a bare 401.
func OptionalAuth(provider *session.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				if claims, err := provider.Verify(parts[1]); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), UserContextKey, claims))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserFromContext extracts identity claims from the request context.
func GetUserFromContext(r *http.Request) (session.Claims, bool) {
	claims, ok := r.Context().Value(UserContextKey).(session.Claims)
	return claims, ok
}
