package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"subhub-backend/internal/common/errors"
)

func performFailingRequest(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), ErrorHandler())
	router.GET("/fail", func(c *gin.Context) { AbortWithError(c, err) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
	return w
}

func TestAbortWithErrorStatusMapping(t *testing.T) {
	cases := []struct {
		code   errors.ErrorCode
		status int
	}{
		{errors.ErrCodeMalformedInput, http.StatusBadRequest},
		{errors.ErrCodeConstraintViolation, http.StatusUnprocessableEntity},
		{errors.ErrCodeInvalidTransition, http.StatusConflict},
		{errors.ErrCodeAuthorityRejected, http.StatusBadGateway},
		{errors.ErrCodeAuthorityUnreachable, http.StatusBadGateway},
		{errors.ErrCodeStorageFailure, http.StatusServiceUnavailable},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := performFailingRequest(t, errors.New(tc.code, "request failed"))
		assert.Equal(t, tc.status, w.Code, string(tc.code))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	}
}

func TestAbortWithErrorLogsRetriability(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	t.Cleanup(func() { log.Logger = prev })

	// Upstream outages are warned about and flagged retriable.
	performFailingRequest(t, errors.New(errors.ErrCodeAuthorityUnreachable, "authority timed out"))
	assert.Contains(t, buf.String(), `"retriable":true`)
	assert.Contains(t, buf.String(), `"level":"warn"`)

	// Caller mistakes stay out of the warn stream and are never retriable.
	buf.Reset()
	performFailingRequest(t, errors.New(errors.ErrCodeConstraintViolation, "file too large"))
	assert.Contains(t, buf.String(), `"retriable":false`)
	assert.Contains(t, buf.String(), `"level":"debug"`)
}
