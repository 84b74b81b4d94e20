package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ribeirowl/processador-giga/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: key, Public: []string{"/healthz"}}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Post("/upload", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		path   string
		header string
		cookie string
		want   int
	}{
		{name: "Disabled", key: "", path: "/", want: 200},
		{name: "Missing key", key: "secret", path: "/", want: 401},
		{name: "Wrong key", key: "secret", path: "/", header: "nope", want: 401},
		{name: "Header key", key: "secret", path: "/", header: "secret", want: 200},
		{name: "Query key", key: "secret", path: "/?api_key=secret", want: 200},
		{name: "Cookie key", key: "secret", path: "/", cookie: "secret", want: 200},
		{name: "Wrong cookie", key: "secret", path: "/", cookie: "nope", want: 401},
		{name: "Public path", key: "secret", path: "/healthz", want: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupTestApp(tt.key)

			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(auth.Header, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: auth.Cookie, Value: tt.cookie})
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestNew_QueryKeyCarriesToFormPosts(t *testing.T) {
	app := setupTestApp("secret")

	resp, err := app.Test(httptest.NewRequest("GET", "/?api_key=secret", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var issued *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == auth.Cookie {
			issued = c
		}
	}
	require.NotNil(t, issued)
	assert.True(t, issued.HttpOnly)

	req := httptest.NewRequest("POST", "/upload", nil)
	req.AddCookie(&http.Cookie{Name: issued.Name, Value: issued.Value})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
