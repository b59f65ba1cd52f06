package server

import (
	"net"

	"github.com/gofiber/fiber/v2"

	"statusapi/internal/logging"
)

// registerLifecycle logs a startup notice once the listener is bound, before
// requests are served, and a shutdown notice when the app shuts down.
func registerLifecycle(app *fiber.App, log *logging.Logger) {
	app.Hooks().OnListen(func(ld fiber.ListenData) error {
		log.Info("startup", logging.Fields{
			"app":  app.Config().AppName,
			"addr": net.JoinHostPort(ld.Host, ld.Port),
			"tls":  ld.TLS,
		})
		return nil
	})

	app.Hooks().OnShutdown(func() error {
		log.Info("shutdown", logging.Fields{
			"app": app.Config().AppName,
		})
		return nil
	})
}
