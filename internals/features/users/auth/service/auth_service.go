// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authRepo "aptads_backend/internals/features/users/auth/repository"
	userModel "aptads_backend/internals/features/users/users/model"
)

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *userModel.UserModel
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

// Login checks credentials and issues an access token.
// Unknown email and wrong password give the same 401.
func Login(ctx context.Context, db *gorm.DB, email, password string, now time.Time) (*LoginResult, error) {
	secret, err := Secret()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	user, err := authRepo.FindUserByEmail(ctx, db, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Email or password is incorrect")
		}
		return nil, err
	}
	if err := CheckPasswordHash(user.Password, password); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Email or password is incorrect")
	}
	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account is disabled")
	}

	tok, exp, err := IssueAccessToken(user.ID, user.Role, secret, now, AccessTTL())
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}

	if err := authRepo.TouchLastLogin(ctx, db, user.ID, now); err != nil {
		log.Printf("[WARN] last_login_at update failed for %s: %v", user.ID, err)
	} else {
		at := now
		user.LastLoginAt = &at
	}
	return &LoginResult{AccessToken: tok, ExpiresAt: exp, User: user}, nil
}

// Logout blacklists the token until shortly after its exp. Empty token is a no-op.
func Logout(ctx context.Context, db *gorm.DB, rawToken string, now time.Time) error {
	if rawToken == "" {
		log.Println("[INFO] Logout without access token")
		return nil
	}
	secret, err := Secret()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return authRepo.BlacklistToken(ctx, db, rawToken, BlacklistUntil(rawToken, secret, now))
}

func Me(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	user, err := authRepo.FindUserByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}
	return user, nil
}

func ChangePassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, current, next string) error {
	user, err := Me(ctx, db, userID)
	if err != nil {
		return err
	}
	if err := CheckPasswordHash(user.Password, current); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Current password incorrect")
	}
	if current == next {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "New password must differ from the current one")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash new password")
	}
	return authRepo.UpdateUserPassword(ctx, db, userID, string(hash))
}
