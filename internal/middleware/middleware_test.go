package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cropRecommendation/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secret"

func newProtectedServer() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	e.GET("/admin", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("subject").(string))
	}, AuthMiddleware(testSecret), AdminOnly())
	return e
}

func TestAuthMiddleware(t *testing.T) {
	adminToken, err := utils.GenerateJWT(testSecret, "operator", "admin", time.Hour)
	require.NoError(t, err)
	viewerToken, err := utils.GenerateJWT(testSecret, "viewer", "viewer", time.Hour)
	require.NoError(t, err)
	foreignToken, err := utils.GenerateJWT("other", "operator", "admin", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantBody: "Missing authorization header"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantBody: "Invalid authorization format"},
		{name: "bad signature", header: "Bearer " + foreignToken, wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
		{name: "not admin", header: "Bearer " + viewerToken, wantStatus: http.StatusForbidden, wantBody: "Admin access required"},
		{name: "admin", header: "Bearer " + adminToken, wantStatus: http.StatusOK, wantBody: "operator"},
	}

	e := newProtectedServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestErrorHandler(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("kaboom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"INTERNAL_SERVER_ERROR","message":"Internal Server Error"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"code":"NOT_FOUND","message":"Not Found"}`, rec.Body.String())
}
