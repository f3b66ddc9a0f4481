package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	arrays "github.com/0xalexb/hjarta-arrays"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestNewModule_WithOptions(t *testing.T) {
	t.Parallel()

	addr := freePort(t)
	doc := arrays.NewContainer()
	doc.Put(arrays.Field("message"), "Hi")

	var store *Store

	app := fxtest.New(t,
		SupplyDocument("documents", doc),
		NewModule("documents", WithAddress(addr)),
		fx.Invoke(fx.Annotate(func(s *Store) { store = s }, fx.ParamTags(`name:"documents"`))),
	)

	app.RequireStart()

	status, body := getBody(t, "http://"+addr+"/values/message")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `"Hi"`, body)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPut,
		"http://"+addr+"/values/user/name", strings.NewReader(`"John Doe"`))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req) //nolint:gosec // G704: test code, URL from test server
	require.NoError(t, err)

	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	data, found, err := store.Lookup([]any{"user", "name"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `"John Doe"`, string(data))

	app.RequireStop()
}

func TestNewModule_WithExternalConfig(t *testing.T) {
	t.Parallel()

	addr := freePort(t)

	app := fxtest.New(t,
		SupplyDocument("settings", arrays.NewContainer()),
		fx.Supply(fx.Annotate(Config{Address: addr}, fx.ResultTags(`name:"settings"`))),
		NewModule("settings"),
	)

	app.RequireStart()

	status, body := getBody(t, "http://"+addr+"/document")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{}`, body)

	app.RequireStop()
}

func TestNewModule_EmptyName(t *testing.T) {
	t.Parallel()

	app := fx.New(
		NewModule(""),
		fx.NopLogger,
	)

	err := app.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestNewModule_MissingDocument(t *testing.T) {
	t.Parallel()

	app := fx.New(
		NewModule("orphan", WithAddress(freePort(t))),
		fx.NopLogger,
	)

	require.Error(t, app.Err())
}
