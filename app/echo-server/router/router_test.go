package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cropRecommendation/business/admin"
	"cropRecommendation/business/catalog"
	"cropRecommendation/business/compatibility"
	"cropRecommendation/business/history"
	"cropRecommendation/business/recommendation"
	"cropRecommendation/internal/middleware"
	"cropRecommendation/internal/rest"
	"cropRecommendation/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "router-secret"

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	hash, err := utils.HashPassword("pw")
	require.NoError(t, err)

	cat := catalog.Default()
	recoSvc := recommendation.NewService(compatibility.NewScorer(cat), nil)
	adminSvc := admin.NewService(admin.Config{Username: "operator", PasswordHash: string(hash), JWTSecret: secret, TokenTTL: time.Hour})

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	api := e.Group("/api/v1")

	SetupSystemRoutes(e, api, rest.NewHealthHandler("test", "0.0.1", cat.Len()))
	SetupCatalogRoutes(api, rest.NewCatalogHandler(cat))
	SetupRecommendationRoutes(api, rest.NewRecommendationHandler(recoSvc))
	SetupAdminRoutes(api, rest.NewAdminHandler(adminSvc), rest.NewHistoryHandler(history.NewService(nil)),
		middleware.AuthMiddleware(secret), middleware.AdminOnly())

	return e
}

func do(e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	e := newServer(t)

	tests := []struct {
		method string
		target string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/v1/health", "", http.StatusOK},
		{http.MethodGet, "/api/v1/attributes", "", http.StatusOK},
		{http.MethodGet, "/api/v1/presets", "", http.StatusOK},
		{http.MethodGet, "/api/v1/crops", "", http.StatusOK},
		{http.MethodGet, "/api/v1/crops/Rice", "", http.StatusOK},
		{http.MethodGet, "/api/v1/crops/Kale", "", http.StatusNotFound},
		{http.MethodPost, "/api/v1/recommendations", `{"climate":"Arid"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/recommendations/explain?crop=Rice", `{"climate":"Arid"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/admin/predictions", "", http.StatusUnauthorized},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/v1/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, do(e, tt.method, tt.target, tt.body, "").Code)
		})
	}
}

func TestAdminFlow(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPost, "/api/v1/admin/login", `{"username":"operator","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := utils.GenerateJWT(secret, "operator", admin.RoleAdmin, time.Hour)
	require.NoError(t, err)

	rec = do(e, http.MethodGet, "/api/v1/admin/predictions", "", token)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/admin/predictions/summary", "", token)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
