package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes attaches the service endpoints to the provided router.
// Handlers are stateless; the only input they read is the request itself.
func RegisterRoutes(r fiber.Router) {
	r.Get("/", Root())
	r.Get("/healthz", LivenessProbe())
	r.Get("/test", TestGet())
	r.Post("/test", TestPost())
}
