package middlewares

import "github.com/gofiber/fiber/v2"

// ProxyConfig: X-Forwarded-For hanya dipercaya dari CIDR/IP yang terdaftar.
// Tanpa daftar, c.IP() tetap alamat socket sehingga header dari klien diabaikan.
func ProxyConfig(cfg fiber.Config, trusted []string) fiber.Config {
	if len(trusted) == 0 {
		cfg.ProxyHeader = ""
		cfg.EnableTrustedProxyCheck = false
		cfg.TrustedProxies = nil
		return cfg
	}
	cfg.ProxyHeader = fiber.HeaderXForwardedFor
	cfg.EnableTrustedProxyCheck = true
	cfg.TrustedProxies = append([]string(nil), trusted...)
	return cfg
}
