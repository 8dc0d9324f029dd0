package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	apperror "gorecipes/internal/errors"
	"gorecipes/internal/pkg/cache"
	"gorecipes/internal/pkg/logger"
	"gorecipes/internal/pkg/respond"
)

// RateLimiter allows limit requests per client IP within each window.
// Counters live in the cache; when the cache is unavailable requests pass.
// A limit <= 0 disables the limiter.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := "rate-limit:" + clientIP(r)

			count, err := client.GetInt(ctx, key)
			switch {
			case err == cache.ErrCacheMiss:
				if err := client.Set(ctx, key, 1, window); err != nil {
					log.Warn("rate limiter could not start counter", map[string]interface{}{"key": key, "error": err.Error()})
				}
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-1))
				next.ServeHTTP(w, r)
				return
			case err != nil:
				log.Warn("rate limiter unavailable, letting request through", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			if count >= limit {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				respond.Error(w, r, log, apperror.NewRateLimitError("Rate limit exceeded"))
				return
			}

			if _, err := client.Incr(ctx, key); err != nil {
				log.Warn("rate limiter could not increment counter", map[string]interface{}{"key": key, "error": err.Error()})
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-count-1))
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
