// Package server assembles the Fiber application: middleware, routes,
// operational endpoints and lifecycle hooks.
package server

import (
	"fmt"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "statusapi/docs"
	"statusapi/internal/config"
	handlers "statusapi/internal/http/handler"
	"statusapi/internal/http/middleware"
	"statusapi/internal/logging"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
	bodyLimit    = 1 << 20
)

// DocsPath is the mount point of the Swagger UI.
const DocsPath = "/docs"

// New builds the application. reg receives the HTTP metrics and backs the
// metrics endpoint when metrics are enabled.
func New(cfg *config.AppConfig, log *logging.Logger, reg *prometheus.Registry) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               cfg.Name,
		ErrorHandler:          handlers.ErrorHandler(),
		// Paths match exactly: /HEALTHZ and /healthz/ are unknown routes.
		CaseSensitive: true,
		StrictRouting: true,
		DisableStartupMessage: true,
		ReadTimeout:           readTimeout,
		WriteTimeout:          writeTimeout,
		IdleTimeout:           idleTimeout,
		BodyLimit:             bodyLimit,
	})

	registerLifecycle(app, log)

	// CORS runs right after the request ID so preflights are answered
	// before any other work and every response carries the headers.
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS())
	app.Use(otelfiber.Middleware(
		otelfiber.WithNext(func(c *fiber.Ctx) bool {
			return cfg.Metrics.Enabled && c.Path() == cfg.Metrics.Path
		}),
	))
	app.Use(middleware.Logger(log))

	if cfg.Metrics.Enabled {
		if reg == nil {
			return nil, fmt.Errorf("metrics enabled but no registry provided")
		}
		prom, err := middleware.NewPrometheusMiddleware(reg, cfg.Metrics.Path)
		if err != nil {
			return nil, fmt.Errorf("register http metrics: %w", err)
		}
		app.Use(prom.Handler())
		app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	}

	handlers.RegisterRoutes(app)

	if cfg.DocsEnabled {
		app.Get(DocsPath+"/*", swagger.HandlerDefault)
	}

	return app, nil
}
