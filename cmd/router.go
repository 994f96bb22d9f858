package cmd

import (
	"log/slog"
	"net/http"

	"chapatis/internal/api/servers"

	// registers the API document for the swagger UI
	_ "chapatis/internal/api/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// CreateEcho returns the fully routed web server: health check, API
// document, swagger UI and the API itself.
func (c *CompositionRoot) CreateEcho() *echo.Echo {
	server := c.CreateHTTPServer()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = server.HTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(c.logger)))

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSONBlob(http.StatusOK, servers.SpecJSON())
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e
}

func requestLoggerConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error.Error())
				logger.WarnContext(ctx.Request().Context(), "request failed", attrs...)
				return nil
			}
			logger.InfoContext(ctx.Request().Context(), "request", attrs...)
			return nil
		},
	}
}
