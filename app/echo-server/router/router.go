package router

import (
	"cropRecommendation/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupSystemRoutes(e *echo.Echo, api *echo.Group, health *rest.HealthHandler) {
	api.GET("/health", health.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	api.GET("/attributes", handler.Attributes)
	api.GET("/presets", handler.Presets)

	crops := api.Group("/crops")
	crops.GET("", handler.ListCrops)
	crops.GET("/:name", handler.GetCrop)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations")
	reco.POST("", handler.Recommend)
	reco.POST("/explain", handler.Explain)
}

func SetupAdminRoutes(api *echo.Group, adminHandler *rest.AdminHandler, historyHandler *rest.HistoryHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin")
	admin.POST("/login", adminHandler.Login)

	predictions := admin.Group("/predictions", authRequired, adminOnly)
	predictions.GET("", historyHandler.List)
	predictions.GET("/summary", historyHandler.Summary)
	predictions.GET("/:id", historyHandler.Get)
}
