package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Logging returns a middleware that logs every request via global slog:
// method, path, status, response size, duration and request ID (if available).
// Log level is Info below 400, Warn for 4xx and Error for 5xx.
func Logging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := wrapResponseWriter(w)

			next.ServeHTTP(rw, r)

			status := rw.finalStatus()

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", rw.bytes),
				slog.Duration("duration", time.Since(start)),
			}

			if reqID := GetRequestID(r.Context()); reqID != "" {
				attrs = append(attrs, slog.String("request_id", reqID))
			}

			const msg = "http request"

			switch {
			case status >= http.StatusInternalServerError:
				slog.Error(msg, attrs...) //nolint:gosec // G706: msg is a constant.
			case status >= http.StatusBadRequest:
				slog.Warn(msg, attrs...) //nolint:gosec // G706: msg is a constant.
			default:
				slog.Info(msg, attrs...) //nolint:gosec // G706: msg is a constant.
			}
		})
	}
}
