package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDGeneratesTraceID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		assert.NotEmpty(t, GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	assert.NoError(t, err)

	traceID := rec.Header().Get(TraceIDHeader)
	assert.NotEmpty(t, traceID)
	_, err = uuid.Parse(traceID)
	assert.NoError(t, err, "generated trace ID should be a valid UUID")
}

func TestRequestIDPropagatesIncomingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		assert.Equal(t, "client-supplied-id", GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	assert.NoError(t, err)
	assert.Equal(t, "client-supplied-id", rec.Header().Get(TraceIDHeader))
}

func TestGetTraceIDWithoutMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.Empty(t, GetTraceID(c))
}
