package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinical-records-api/internal/platform/apperr"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestError_ValidationUsesOwnMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, apperr.Validation("page must be 1 or greater"), "Error fetching patients")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	env := decode(t, rec)
	assert.Equal(t, 400, env.Status)
	assert.Equal(t, "page must be 1 or greater", env.Message)
	assert.Equal(t, "validation: page must be 1 or greater", env.Data)
}

func TestError_StorageUsesFallback(t *testing.T) {
	rec := httptest.NewRecorder()
	err := apperr.Connection("sqldb.acquire", errors.New("login timeout"))
	Error(rec, err, "Error fetching patients")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "Error fetching patients", env.Message)
	assert.Contains(t, env.Data, "login timeout")
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "patient not found")

	env := decode(t, rec)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "patient not found", env.Message)
	assert.Nil(t, env.Data)
}
