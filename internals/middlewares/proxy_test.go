package middlewares

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestProxyConfig(t *testing.T) {
	base := fiber.Config{
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	}

	cfg := ProxyConfig(base, nil)
	assert.Empty(t, cfg.ProxyHeader)
	assert.False(t, cfg.EnableTrustedProxyCheck)
	assert.Empty(t, cfg.TrustedProxies)

	cfg = ProxyConfig(fiber.Config{}, []string{"10.0.0.0/8", "127.0.0.1"})
	assert.Equal(t, fiber.HeaderXForwardedFor, cfg.ProxyHeader)
	assert.True(t, cfg.EnableTrustedProxyCheck)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.TrustedProxies)
}
