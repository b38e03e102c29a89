package handlers

import (
	"omnigate/internal/models"
	"omnigate/internal/services/auth"
	"omnigate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler exposes login and token lifecycle endpoints.
type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(s auth.Service) *AuthHandler { return &AuthHandler{service: s} }

// Login handles POST /api/login requests.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	user, accessToken, refreshToken, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		return response.Unauthorized(c, err.Error())
	}

	return response.Success(c, "login successful", fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"role":          user.Role,
	})
}

// Refresh handles POST /api/auth/refresh requests.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	accessToken, refreshToken, err := h.service.RefreshTokens(req.RefreshToken)
	if err != nil {
		return response.Unauthorized(c, err.Error())
	}

	return response.Success(c, "tokens refreshed", fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// Logout handles POST /api/auth/logout requests.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)
	if err := h.service.Logout(claims.UserID); err != nil {
		return response.InternalError(c, "logout failed")
	}
	return response.Success(c, "logged out", nil)
}
