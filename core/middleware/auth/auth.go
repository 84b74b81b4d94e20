package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

const (
	// Header is the request header carrying the API key.
	Header = "X-API-Key"
	// Query is the query parameter carrying the API key.
	Query = "api_key"
	// Cookie remembers a key that arrived in the query string, so browser
	// form posts and download links keep working after the first page.
	Cookie = "api_key"
)

// Config holds configuration for the auth middleware.
type Config struct {
	// ApiKey is the expected key. Empty disables the check.
	ApiKey string
	// Public lists paths that never require a key.
	Public []string
}

// New returns a middleware that rejects requests without the configured key.
// The key is read from the X-API-Key header, the api_key query parameter or
// the api_key cookie. A valid query key is stored in the cookie.
func New(cfg Config) fiber.Handler {
	public := make(map[string]struct{}, len(cfg.Public))
	for _, p := range cfg.Public {
		public[p] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if _, ok := public[c.Path()]; ok {
			return c.Next()
		}

		if valid(c.Get(Header), cfg.ApiKey) || valid(c.Cookies(Cookie), cfg.ApiKey) {
			return c.Next()
		}
		if valid(c.Query(Query), cfg.ApiKey) {
			c.Cookie(&fiber.Cookie{
				Name:     Cookie,
				Value:    cfg.ApiKey,
				Path:     "/",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteStrictMode,
			})
			return c.Next()
		}
		return c.Status(fiber.StatusUnauthorized).SendString("Não autorizado")
	}
}

func valid(key, want string) bool {
	return key != "" && subtle.ConstantTimeCompare([]byte(key), []byte(want)) == 1
}
