package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/", 0, nil)
	require.NoError(t, err)

	st, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", st)
}

func TestGetJSON_ErrorEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":500,"message":"database unreachable","data":"login timeout"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0, nil)
	require.NoError(t, err)

	_, err = c.Health(context.Background())
	var herr *HTTPError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, 500, herr.StatusCode)
	assert.Equal(t, "database unreachable", herr.Message)
}

func TestNew_RejectsBadURL(t *testing.T) {
	_, err := New("not a url", 0, nil)
	assert.Error(t, err)
	_, err = New("", 0, nil)
	assert.Error(t, err)
}
