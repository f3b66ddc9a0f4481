package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recovery returns a middleware that recovers from panics in downstream handlers.
// It logs the panic value and stack trace via global slog and responds with
// 500 Internal Server Error and a JSON error body, unless part of the response was already sent, in
// which case only the log entry is written. http.ErrAbortHandler is re-panicked
// so net/http can abort the connection.
func Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := wrapResponseWriter(w)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				attrs := []any{
					slog.String("panic", fmt.Sprintf("%v", rec)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}

				if reqID := GetRequestID(r.Context()); reqID != "" {
					attrs = append(attrs, slog.String("request_id", reqID))
				}

				if rw.written {
					attrs = append(attrs, slog.Bool("response_already_written", true))
					slog.Error("panic recovered after response was already written", attrs...) //nolint:gosec

					return
				}

				slog.Error("panic recovered", attrs...) //nolint:gosec // G706: message is a constant.

				WriteError(rw, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
