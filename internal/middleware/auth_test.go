package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/dailyquiz/internal/config"
	"github.com/example/dailyquiz/internal/middleware"
	"github.com/example/dailyquiz/internal/utils"
)

func newAuthTestApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/secure", middleware.AuthMiddleware(cfg), func(c *fiber.Ctx) error {
		userID, ok := middleware.GetCurrentUserID(c)
		if !ok {
			return fiber.NewError(fiber.StatusInternalServerError, "no user in context")
		}
		return c.JSON(fiber.Map{"user_id": userID.String()})
	})
	return app
}

func TestAuthMiddlewareFailsClosed(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := newAuthTestApp(cfg)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"bearer without token", "Bearer"},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := newAuthTestApp(cfg)

	userID := uuid.New()
	token, err := utils.GenerateToken(cfg.JWTSecret, userID, "player@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareRejectsTokenSignedWithOtherSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := newAuthTestApp(cfg)

	token, err := utils.GenerateToken("other-secret", uuid.New(), "", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
