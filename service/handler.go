package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	arrays "github.com/0xalexb/hjarta-arrays"
	"github.com/0xalexb/hjarta-arrays/service/middleware"
	"github.com/goccy/go-yaml"
)

// URLPathSeparator separates keys in the {path...} segment of /values routes.
const URLPathSeparator = "/"

// ErrEmptyBody is returned when a PUT request carries no value.
var ErrEmptyBody = errors.New("request body must not be empty")

// NewHandler returns the HTTP API over store, wrapped in the middleware chain.
//
//	GET    /document        whole document
//	GET    /values/{path}   value at path, 404 when absent
//	PUT    /values/{path}   store the JSON or YAML body at path
//	DELETE /values/{path}   remove path, missing paths are fine
func NewHandler(store *Store, maxBodyBytes int64) http.Handler {
	api := &handler{store: store}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /document", api.document)
	mux.HandleFunc("GET /values/{path...}", api.get)
	mux.HandleFunc("PUT /values/{path...}", api.put)
	mux.HandleFunc("DELETE /values/{path...}", api.remove)

	return middleware.Chain(mux,
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.MaxRequestSize(maxBodyBytes),
	)
}

type handler struct {
	store *Store
}

func requestPath(r *http.Request) arrays.Path {
	return arrays.SplitPath(r.PathValue("path"), URLPathSeparator)
}

func (h *handler) document(w http.ResponseWriter, _ *http.Request) {
	data, err := h.store.Snapshot()
	if err != nil {
		writeError(w, statusFor(err), err)

		return
	}

	writeJSON(w, http.StatusOK, data)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	path := requestPath(r)

	data, found, err := h.store.Lookup(path)
	if err != nil {
		writeError(w, statusFor(err), err)

		return
	}

	if !found {
		writeError(w, http.StatusNotFound, fmt.Errorf("no value at %q", path.String()))

		return
	}

	writeJSON(w, http.StatusOK, data)
}

func (h *handler) put(w http.ResponseWriter, r *http.Request) {
	value, err := decodeValue(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err)

			return
		}

		writeError(w, http.StatusBadRequest, err)

		return
	}

	err = h.store.Set(requestPath(r), value)
	if err != nil {
		writeError(w, statusFor(err), err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) remove(w http.ResponseWriter, r *http.Request) {
	err := h.store.Remove(requestPath(r))
	if err != nil {
		writeError(w, statusFor(err), err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeValue reads a JSON or YAML value, keeping mapping order.
func decodeValue(body io.Reader) (any, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	if len(data) == 0 {
		return nil, ErrEmptyBody
	}

	var value any

	err = yaml.UnmarshalWithOptions(data, &value, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("decoding body: %w", err)
	}

	return arrays.Normalize(value), nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, arrays.ErrInvalidPath):
		return http.StatusBadRequest
	case errors.Is(err, arrays.ErrKeyConflict):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err := w.Write(data)
	if err != nil {
		slog.Debug("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	middleware.WriteError(w, status, err.Error())
}
