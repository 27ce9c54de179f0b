package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsphere/internal/middleware"
	"blogsphere/internal/pkg/logger"
)

func TestRequestInfoReachesLogEntries(t *testing.T) {
	base, hook := test.NewNullLogger()
	log := logger.NewWithLogrus(base, logger.ClientIPKey, logger.UserAgentKey)

	app := fiber.New()
	app.Use(middleware.RequestInfo())
	app.Get("/ping", func(c *fiber.Ctx) error {
		log.Info(c.Context(), "ping")
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("CF-Connecting-IP", "203.0.113.7")
	req.Header.Set("User-Agent", "blog-reader/1.0")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "203.0.113.7", entry.Data[logger.ClientIPKey])
	assert.Equal(t, "blog-reader/1.0", entry.Data[logger.UserAgentKey])
}
