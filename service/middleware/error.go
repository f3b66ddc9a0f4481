package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteError answers with status and a JSON body {"error": message}.
func WriteError(w http.ResponseWriter, status int, message string) {
	data, err := json.Marshal(map[string]string{"error": message})
	if err != nil {
		http.Error(w, message, status)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	_, err = w.Write(data)
	if err != nil {
		slog.Debug("failed to write error response", "error", err)
	}
}
