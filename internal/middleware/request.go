package middleware

import (
	"github.com/gofiber/fiber/v2"

	"blogsphere/internal/pkg/logger"
)

// RequestInfo stores the client address and user agent in locals, where the
// context logger picks them up. Behind Cloudflare the client address arrives
// in CF-Connecting-IP.
func RequestInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.Get("CF-Connecting-IP")
		if ip == "" {
			if ips := c.IPs(); len(ips) > 0 {
				ip = ips[0]
			} else {
				ip = c.IP()
			}
		}
		c.Locals(logger.ClientIPKey, ip)
		c.Locals(logger.UserAgentKey, c.Get(fiber.HeaderUserAgent))
		return c.Next()
	}
}
