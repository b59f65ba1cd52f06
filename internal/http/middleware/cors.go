package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// allMethods lists every method the CORS policy advertises on preflight.
var allMethods = []string{
	fiber.MethodGet,
	fiber.MethodHead,
	fiber.MethodPost,
	fiber.MethodPut,
	fiber.MethodPatch,
	fiber.MethodDelete,
	fiber.MethodOptions,
	fiber.MethodTrace,
	fiber.MethodConnect,
}

// CORS applies a blanket allow-everything cross-origin policy: any origin,
// any method, any request header, credentials permitted.
//
// WARNING: this is intentionally wide open. Any site can issue credentialed
// requests against the service and read the responses. The requesting origin
// is reflected instead of "*" because browsers reject a wildcard origin on
// credentialed responses. An empty AllowHeaders makes Fiber reflect the
// preflight's Access-Control-Request-Headers, i.e. any header is allowed.
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOriginsFunc: func(string) bool { return true },
		AllowMethods:     strings.Join(allMethods, ","),
		AllowHeaders:     "",
		AllowCredentials: true,
	})
}
