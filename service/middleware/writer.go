package middleware

import (
	"bufio"
	"net"
	"net/http"
)

// responseWriter wraps http.ResponseWriter to record the status code, the
// number of body bytes and whether anything reached the client.
type responseWriter struct {
	http.ResponseWriter

	status   int
	bytes    int
	written  bool
	hijacked bool
}

func wrapResponseWriter(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}

	return &responseWriter{ResponseWriter: w}
}

func (w *responseWriter) WriteHeader(code int) {
	// Informational headers may be sent several times before the final one.
	if code >= http.StatusContinue && code < http.StatusOK && code != http.StatusSwitchingProtocols {
		w.ResponseWriter.WriteHeader(code)

		return
	}

	if w.written {
		return
	}

	w.status = code
	w.written = true

	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.status = http.StatusOK
		w.written = true
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n

	return n, err //nolint:wrapcheck
}

// Flush implements http.Flusher through http.ResponseController so it works
// even when intermediate wrappers only expose Unwrap.
func (w *responseWriter) Flush() {
	rc := http.NewResponseController(w.ResponseWriter)

	err := rc.Flush()
	if err == nil && !w.written {
		w.status = http.StatusOK
		w.written = true
	}
}

// Hijack implements http.Hijacker through http.ResponseController.
func (w *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	rc := http.NewResponseController(w.ResponseWriter)

	conn, buf, err := rc.Hijack()
	if err == nil {
		w.hijacked = true
		w.written = true
	}

	return conn, buf, err //nolint:wrapcheck
}

// Unwrap returns the underlying ResponseWriter for http.ResponseController.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// finalStatus returns the status the client saw, filling in the implicit ones.
func (w *responseWriter) finalStatus() int {
	switch {
	case w.status != 0:
		return w.status
	case w.hijacked:
		return http.StatusSwitchingProtocols
	default:
		return http.StatusOK
	}
}
