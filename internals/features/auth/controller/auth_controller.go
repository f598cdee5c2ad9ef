package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"legisq_backend/internals/configs"
	authsvc "legisq_backend/internals/features/auth/service"
	helper "legisq_backend/internals/helpers"
	authmw "legisq_backend/internals/middlewares/auth"
)

type AuthController struct {
	Auth *authsvc.Authenticator
}

func NewAuthController(a *authsvc.Authenticator) *AuthController {
	return &AuthController{Auth: a}
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	Session     authsvc.Session `json:"session"`
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	token, sess, err := h.Auth.Login(req.Password)
	switch {
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		log.Printf("[WARN] failed admin login from %s", c.IP())
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid password")
	case errors.Is(err, authsvc.ErrNotConfigured):
		log.Printf("[ERROR] admin login attempted but no password/secret configured")
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "admin login is not configured")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	secure := strings.EqualFold(configs.GetEnv("APP_ENV"), "production")
	helper.SetAccessTokenCookie(c, token, sess.ExpiresAt, secure)
	log.Printf("[INFO] admin logged in jti=%s", sess.TokenID)
	return helper.JsonOK(c, "login successful", LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		Session:     sess,
	})
}

// GET /api/auth/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	sess, ok := authmw.SessionFrom(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.JsonOK(c, "ok", sess)
}

// POST /api/auth/logout: token stateless, cukup hapus cookie.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	helper.ClearAccessTokenCookie(c)
	return helper.JsonOK(c, "logged out", nil)
}
