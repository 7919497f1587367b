package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videotube/backend/pkg/apperr"
)

func perform(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/t", handler)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestSuccessEnvelope(t *testing.T) {
	w := perform(t, func(c *gin.Context) {
		Success(c, http.StatusCreated, gin.H{"id": "1"}, "created")
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(201), body["statusCode"])
	assert.Equal(t, "created", body["message"])
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["data"])
}

func TestFromErrorMapsKinds(t *testing.T) {
	cases := []struct {
		kind   apperr.Kind
		status int
	}{
		{apperr.Validation, http.StatusBadRequest},
		{apperr.Unauthenticated, http.StatusUnauthorized},
		{apperr.Forbidden, http.StatusForbidden},
		{apperr.NotFound, http.StatusNotFound},
		{apperr.Conflict, http.StatusConflict},
		{apperr.Internal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := perform(t, func(c *gin.Context) {
			FromError(c, apperr.New(tc.kind, "boom"))
		})
		assert.Equal(t, tc.status, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "boom", body["message"])
		assert.NotNil(t, body["errors"])
	}
}

func TestFromErrorHidesUnknownErrors(t *testing.T) {
	w := perform(t, func(c *gin.Context) {
		FromError(c, errors.New("pq: connection refused on 10.0.0.5"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestWrappedCauseNeverSerialized(t *testing.T) {
	w := perform(t, func(c *gin.Context) {
		FromError(c, apperr.Wrap(errors.New("dial tcp: secret-host"), apperr.Internal, "could not load user"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret-host")
	assert.Contains(t, w.Body.String(), "could not load user")
}
