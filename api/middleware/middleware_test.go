package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetToken(c))
	})

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"token header", map[string]string{"token": "abc"}, "abc"},
		{"bearer", map[string]string{"Authorization": "Bearer xyz"}, "xyz"},
		{"token wins", map[string]string{"token": "abc", "Authorization": "Bearer xyz"}, "abc"},
		{"basic ignored", map[string]string{"Authorization": "Basic xyz"}, ""},
		{"none", map[string]string{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(body))
		})
	}
}

func TestLocalhostRegex(t *testing.T) {
	assert.True(t, LocalhostRegex.MatchString("http://localhost:3000"))
	assert.True(t, LocalhostRegex.MatchString("localhost"))
	assert.False(t, LocalhostRegex.MatchString("http://evil.com"))
}
