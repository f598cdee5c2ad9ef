package route

import (
	"github.com/gofiber/fiber/v2"

	authctl "legisq_backend/internals/features/auth/controller"
	authsvc "legisq_backend/internals/features/auth/service"
	"legisq_backend/internals/middlewares"
	authmw "legisq_backend/internals/middlewares/auth"
)

func AuthRoutes(r fiber.Router, a *authsvc.Authenticator) {
	ctrl := authctl.NewAuthController(a)

	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/logout", ctrl.Logout)
	r.Get("/me", authmw.AdminAuth(a), ctrl.Me)
}
