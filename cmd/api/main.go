package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"statusapi/internal/config"
	"statusapi/internal/logging"
	tracing "statusapi/internal/otel"
	"statusapi/internal/server"
)

const tracingFlushTimeout = 5 * time.Second

// @title Status API
// @version 1.0
// @description Status, health and echo endpoints.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc, tzErr := cfg.Location()
	log := logging.New(os.Stdout, loc)
	if tzErr != nil {
		log.Warn("timezone_fallback", logging.Fields{"timezone": cfg.Timezone, "using": loc.String(), "error": tzErr.Error()})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Name, log)
	if err != nil {
		log.Error("tracing_init_failed", err, nil)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := server.New(cfg, log, reg)
	if err != nil {
		log.Error("server_init_failed", err, nil)
		os.Exit(1)
	}

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.Addr())
	}()

	exitCode := 0
	select {
	case err := <-listenErr:
		if err != nil {
			log.Error("listen_failed", err, logging.Fields{"addr": cfg.Addr()})
			exitCode = 1
		}
	case <-ctx.Done():
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout()); err != nil {
			log.Error("shutdown_failed", err, nil)
			exitCode = 1
		}
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), tracingFlushTimeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Error("tracing_shutdown_failed", err, nil)
	}

	if exitCode != 0 {
		cancel()
		stop()
		os.Exit(exitCode)
	}
}
