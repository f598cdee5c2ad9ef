// internals/middlewares/auth/admin_auth.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	authsvc "legisq_backend/internals/features/auth/service"
	helper "legisq_backend/internals/helpers"
)

const LocSession = "admin_session"

// AdminAuth: token dari cookie / Bearer → Session di Locals.
func AdminAuth(a *authsvc.Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing token")
		}
		sess, err := a.Parse(raw)
		if err != nil {
			log.Printf("[WARN] admin auth %s %s: %v", c.Method(), c.Path(), err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid or expired token")
		}
		if !sess.IsAdmin() {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden - admin only")
		}
		helper.SetRawAccessToken(c, raw)
		c.Locals(LocSession, sess)
		return c.Next()
	}
}

// SessionFrom mengambil Session yang diset AdminAuth.
func SessionFrom(c *fiber.Ctx) (authsvc.Session, bool) {
	s, ok := c.Locals(LocSession).(authsvc.Session)
	return s, ok
}
