package ratelimit

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"spc-gateway/pkg/requestcontext"
)

// Middleware applies the limiter per authenticated client. It runs after
// auth, so an empty client ID means an unauthenticated probe; those fall back
// to the remote address.
func Middleware(limiter *Limiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := requestcontext.ClientID(ctx)
			if key == "" {
				key = r.RemoteAddr
			}

			result := limiter.Allow(key)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed {
				logger.WarnContext(ctx, "consultation quota exceeded",
					"client_id", key,
					"request_id", requestcontext.RequestID(ctx),
				)
				retryAfter := max(int(time.Until(result.ResetAt).Seconds()), 1)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate_limited","error_description":"consultation quota exceeded"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
