package rayid

import (
	"github.com/ribeirowl/processador-giga/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the Ray ID.
const Header = "X-Ray-ID"

// New returns a middleware that assigns a Ray ID to every request.
// An incoming X-Ray-ID header is reused so calls can be traced across proxies.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Locals(logger.RayIDKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
