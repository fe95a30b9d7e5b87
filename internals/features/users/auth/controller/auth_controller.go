// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptads_backend/internals/configs"
	authService "aptads_backend/internals/features/users/auth/service"
	userDTO "aptads_backend/internals/features/users/users/dto"
	helper "aptads_backend/internals/helpers"
	"aptads_backend/internals/helpers/dbtime"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

func setAccessCookie(c *fiber.Ctx, token string, exp time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     helper.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HTTPOnly: true,
		Secure:   configs.GetEnvBool("COOKIE_SECURE", true),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RespondBindError(c, err)
	}
	res, err := authService.Login(c.UserContext(), ac.DB, req.Email, req.Password, dbtime.Now(c))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	setAccessCookie(c, res.AccessToken, res.ExpiresAt)
	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": res.AccessToken,
		"token_type":   "Bearer",
		"expires_at":   res.ExpiresAt,
		"user":         userDTO.FromModel(res.User),
	})
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := authService.Logout(c.UserContext(), ac.DB, helper.GetRawAccessToken(c), dbtime.Now(c)); err != nil {
		return helper.FromFiberError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     helper.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
	})
	return helper.JsonOK(c, "Logout successful", nil)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	uid, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	user, err := authService.Me(c.UserContext(), ac.DB, uid)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", userDTO.FromModel(user))
}

// POST /api/auth/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	uid, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req ChangePasswordRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RespondBindError(c, err)
	}
	if err := authService.ChangePassword(c.UserContext(), ac.DB, uid, req.CurrentPassword, req.NewPassword); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
