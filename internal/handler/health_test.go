package handler_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_200(t *testing.T) {
	rec := doJSON(t, newHandler(nil, nil, nil), http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "tripflow-backend", resp["service"])
	assert.NotEmpty(t, resp["version"])
}

func TestAPIRoot_200(t *testing.T) {
	rec := doJSON(t, newHandler(nil, nil, nil), http.MethodGet, "/api/", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealth_200(t *testing.T) {
	rec := doJSON(t, newHandler(nil, nil, nil), http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "tripflow-backend", resp["service"])
}

func TestOpenAPI_200(t *testing.T) {
	rec := doJSON(t, newHandler(nil, nil, nil), http.MethodGet, "/openapi.yaml", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.True(t, strings.Contains(rec.Body.String(), "openapi:"))
}
