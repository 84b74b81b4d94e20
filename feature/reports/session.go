package reports

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// sessionID returns the session id from the cookie, issuing a new one when
// the cookie is missing or malformed. The cookie value aliases the request
// buffer, so it is cloned before it can become a registry key.
func (h *Handler) sessionID(c *fiber.Ctx) string {
	if id := c.Cookies(h.cookie); id != "" {
		if _, err := uuid.Parse(id); err == nil {
			return strings.Clone(id)
		}
	}

	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie,
		Value:    id,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	return id
}
