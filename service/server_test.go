package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"io"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) string {
	t.Helper()

	listenCfg := net.ListenConfig{}

	ln, err := listenCfg.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer func() { _ = ln.Close() }()

	return ln.Addr().String()
}

func getBody(t *testing.T, url string) (int, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req) //nolint:gosec // G704: test code, URL from test server
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestNewServer_SetsDefaults(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})
	srv, err := NewServer("test", handler, Config{}, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultAddress, srv.config.Address)
	assert.Equal(t, "test", srv.name)
	assert.Empty(t, srv.Addr())
}

func TestNewServer_Errors(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})

	srv, err := NewServer("", handler, Config{}, nil)
	require.ErrorIs(t, err, ErrEmptyName)
	assert.Nil(t, srv)

	srv, err = NewServer("test", nil, Config{}, nil)
	require.ErrorIs(t, err, ErrNilHandler)
	assert.Nil(t, srv)

	srv, err = NewServer("test", handler, Config{MaxBodyBytes: -1}, nil)
	require.ErrorIs(t, err, ErrNegativeMaxBodyBytes)
	assert.Nil(t, srv)
}

func TestServer_StartStop(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)

		_, _ = fmt.Fprint(w, "hello")
	})

	srv, err := NewServer("documents", handler, Config{Address: "127.0.0.1:0"}, nil)
	require.NoError(t, err)

	err = srv.Start(context.Background())
	require.NoError(t, err)

	addr := srv.Addr()
	require.NotEmpty(t, addr)

	status, body := getBody(t, "http://"+addr)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "hello", body)

	err = srv.Stop(context.Background())
	require.NoError(t, err)

	dialer := net.Dialer{Timeout: 100 * time.Millisecond}

	conn, dialErr := dialer.DialContext(context.Background(), "tcp", addr)
	if dialErr == nil {
		_ = conn.Close()
	}

	assert.Error(t, dialErr, "should not be able to connect after stop")
}

func TestServer_StartFailure(t *testing.T) {
	t.Parallel()

	listenCfg := net.ListenConfig{}

	ln, err := listenCfg.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer func() { _ = ln.Close() }()

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})

	srv, srvErr := NewServer("fail", handler, Config{Address: ln.Addr().String()}, nil)
	require.NoError(t, srvErr)

	err = srv.Start(context.Background())
	require.ErrorIs(t, err, ErrListenFailed)
}

func TestServer_ServeErrorCallsOnServeErr(t *testing.T) {
	t.Parallel()

	var called atomic.Bool

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})
	srv, srvErr := NewServer("test", handler, Config{Address: freePort(t)}, func() {
		called.Store(true)
	})
	require.NoError(t, srvErr)

	err := srv.Start(context.Background())
	require.NoError(t, err)

	// Closing the listener directly yields an error other than ErrServerClosed.
	_ = srv.listener.Close()

	assert.Eventually(
		t, called.Load, time.Second, 10*time.Millisecond,
		"onServeErr callback should be called on serve error",
	)
}

func TestServer_StopWithCancelledContext(t *testing.T) {
	t.Parallel()

	received := make(chan struct{})

	handler := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		close(received)
		<-r.Context().Done()
	})

	srv, err := NewServer("test", handler, Config{Address: "127.0.0.1:0"}, nil)
	require.NoError(t, err)

	err = srv.Start(context.Background())
	require.NoError(t, err)

	reqCtx, reqCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer reqCancel()

	go func() {
		req, reqErr := http.NewRequestWithContext(reqCtx, http.MethodGet, "http://"+srv.Addr(), nil)
		if reqErr != nil {
			return
		}

		resp, doErr := http.DefaultClient.Do(req) //nolint:gosec // G704: test code, URL from test server
		if doErr == nil {
			_ = resp.Body.Close()
		}
	}()

	<-received

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = srv.Stop(ctx)
	require.ErrorIs(t, err, ErrShutdownFailed)
}

func TestServer_LogsDocumentLifecycle(t *testing.T) { //nolint:paralleltest // modifies global slog default
	var buf bytes.Buffer

	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})

	srv, err := NewServer("inventory", handler, Config{Address: "127.0.0.1:0", MaxBodyBytes: 2048}, nil)
	require.NoError(t, err)

	require.NoError(t, srv.Start(context.Background()))
	require.NoError(t, srv.Stop(context.Background()))

	var entries []map[string]any

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any

		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}

	require.Len(t, entries, 2)

	assert.Equal(t, "serving document", entries[0]["msg"])
	assert.Equal(t, "inventory", entries[0]["document"])
	assert.Equal(t, srv.Addr(), entries[0]["address"])
	assert.InDelta(t, 2048, entries[0]["max_body_bytes"], 0)

	assert.Equal(t, "stopping document service", entries[1]["msg"])
	assert.Equal(t, "inventory", entries[1]["document"])
}
