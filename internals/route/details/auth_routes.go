package details

import (
	AuthRoutes "legisq_backend/internals/features/auth/route"
	authsvc "legisq_backend/internals/features/auth/service"

	"github.com/gofiber/fiber/v2"
)

// Contoh akses: POST /api/auth/login
func AdminAuthRoutes(app *fiber.App, a *authsvc.Authenticator) {
	AuthRoutes.AuthRoutes(app.Group("/api/auth"), a)
}
