package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"handloom/config"
	deliverycontext "handloom/internal/delivery/context"
	"handloom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func newLoggedEcho(logger *slog.Logger, debug bool, h echo.HandlerFunc) *echo.Echo {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/api/orders", h)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKept bool
	}{
		{name: "client id kept", header: "req-7", wantKept: true},
		{name: "missing id minted", header: ""},
		{name: "control characters replaced", header: "req\nforged=1"},
		{name: "oversized id replaced", header: strings.Repeat("a", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := newBufferLogger()
			var seen string
			e := newLoggedEcho(logger, false, func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.wantKept {
				assert.Equal(t, tt.header, seen)

				return
			}
			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	principal := &entity.Principal{UserID: uuid.New(), Role: entity.RoleWeaver}

	t.Run("quiet outside debug", func(t *testing.T) {
		logger, buf := newBufferLogger()
		e := newLoggedEcho(logger, false, func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("server errors are always logged with the caller", func(t *testing.T) {
		logger, buf := newBufferLogger()
		e := newLoggedEcho(logger, false, func(c echo.Context) error {
			deliverycontext.SetPrincipal(c, principal)

			return errors.New("connection reset")
		})

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders", nil))

		out := buf.String()
		assert.Contains(t, out, `"level":"ERROR"`)
		assert.Contains(t, out, `"status":500`)
		assert.Contains(t, out, `"route":"/api/orders"`)
		assert.Contains(t, out, principal.UserID.String())
		assert.Contains(t, out, `"role":"weaver"`)
	})

	t.Run("debug logs client errors as warnings", func(t *testing.T) {
		logger, buf := newBufferLogger()
		e := newLoggedEcho(logger, true, func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusNotFound)
		})

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders", nil))

		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), `"status":404`)
	})
}

func TestSetPrincipal_TagsRequestLogger(t *testing.T) {
	logger, buf := newBufferLogger()
	principal := &entity.Principal{UserID: uuid.New(), Role: entity.RoleCustomer}

	e := newLoggedEcho(logger, false, func(c echo.Context) error {
		deliverycontext.SetPrincipal(c, principal)
		deliverycontext.GetLogger(c.Request().Context()).Info("Order placed")

		return c.NoContent(http.StatusOK)
	})
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	assert.Contains(t, buf.String(), `"user_id":"`+principal.UserID.String()+`"`)
	assert.Contains(t, buf.String(), `"msg":"Order placed"`)
}
