package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithRequestID(t *testing.T, header string) (string, string) {
	t.Helper()

	var fromContext string

	handler := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		fromContext = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/document", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return fromContext, rec.Header().Get(RequestIDHeader)
}

func TestRequestID_ReusesValidHeader(t *testing.T) {
	t.Parallel()

	fromContext, fromResponse := serveWithRequestID(t, "client-id-42")

	assert.Equal(t, "client-id-42", fromContext)
	assert.Equal(t, "client-id-42", fromResponse)
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"too long", strings.Repeat("a", maxRequestIDLength+1)},
		{"non printable", "bad\x01id"},
		{"non ascii", "idé"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fromContext, fromResponse := serveWithRequestID(t, tc.header)

			_, err := uuid.Parse(fromContext)
			require.NoError(t, err)
			assert.Equal(t, fromContext, fromResponse)
		})
	}
}

func TestRequestID_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})

	for range 100 {
		id, _ := serveWithRequestID(t, "")
		_, dup := seen[id]
		require.False(t, dup, "duplicate request id %s", id)

		seen[id] = struct{}{}
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetRequestID(context.Background()))
}
