package middleware

import (
	"net"
	"net/http"

	rl "github.com/rogerio-castellano/pawelier/internal/http/rate_limiter"
)

// RateLimit answers 429 once a client address exhausts its bucket.
func RateLimit(l *rl.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !l.Allow(ip) {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
