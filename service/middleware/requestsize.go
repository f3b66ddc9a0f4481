package middleware

import (
	"log/slog"
	"net/http"
)

// DefaultMaxRequestSize is used when MaxRequestSize gets a non-positive limit.
const DefaultMaxRequestSize int64 = 1 << 20

// MaxRequestSize returns a middleware that limits request bodies to limit bytes
// using http.MaxBytesReader. Handlers reading past the limit get an
// *http.MaxBytesError and should answer 413 Request Entity Too Large.
//
// A limit of zero or less falls back to DefaultMaxRequestSize with a warning.
func MaxRequestSize(limit int64) func(http.Handler) http.Handler {
	if limit <= 0 {
		slog.Warn("middleware: request size limit must be positive, using default",
			"provided", limit, "default", DefaultMaxRequestSize)

		limit = DefaultMaxRequestSize
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
