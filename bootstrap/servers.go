package bootstrap

import (
	"github.com/labstack/echo/v4"

	"feed-composer/config"
	"feed-composer/logger"
	"feed-composer/middleware"
	"feed-composer/rest"
	"feed-composer/usecase"
)

// newEchoServer wires the REST surface: health plus the v1 feed group,
// optionally guarded by the service-token middleware.
func newEchoServer(
	cfg *config.Config,
	refreshUsecase *usecase.RefreshFeedUsecase,
	fetchUsecase *usecase.FetchFeedUsecase,
) *echo.Echo {
	handler := rest.NewHandler(refreshUsecase, fetchUsecase)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.ReadHeaderTimeout

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggingMiddleware(logger.Logger))

	e.GET("/v1/health", handler.Health)

	v1 := e.Group("/v1/feed")
	if cfg.Auth.ServiceTokenSecret != "" {
		v1.Use(middleware.ServiceTokenMiddleware(cfg.Auth.ServiceTokenSecret))
	}
	v1.POST("/:user_id/refresh", handler.RefreshFeed)
	v1.GET("/:user_id", handler.GetFeed)

	return e
}
