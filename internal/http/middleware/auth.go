package middleware

import (
	"context"
	"net/http"

	"github.com/rogerio-castellano/pawelier/internal/auth"
)

type contextKey string

const userIDKey = contextKey("user_id")

// Auth rejects requests without a valid bearer token and stores the user id in the request context.
func Auth(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := tokens.ParseBearer(r.Header.Get("Authorization"))
			if err != nil {
				http.Error(w, "missing or invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user id, or 0 outside Auth.
func UserID(r *http.Request) int {
	if val, ok := r.Context().Value(userIDKey).(int); ok {
		return val
	}
	return 0
}
