// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authRepo "aptads_backend/internals/features/users/auth/repository"
	authService "aptads_backend/internals/features/users/auth/service"
	helper "aptads_backend/internals/helpers"
)

var ErrUserInactive = errors.New("user inactive")

type AuthJWTOpts struct {
	// Secret resolves the signing key per request (env may be reloaded in tests).
	Secret func() (string, error)
	// BlacklistChecker reports whether the raw token was revoked.
	BlacklistChecker func(ctx context.Context, token string) (bool, error)
	// UserActive returns gorm.ErrRecordNotFound for unknown users and ErrUserInactive for disabled ones.
	UserActive func(ctx context.Context, id uuid.UUID) error
	Skew       time.Duration
	Now        func() time.Time
}

// AuthJWT verifies the access token and stores user_id / userRole in Locals.
func AuthJWT(opts AuthJWTOpts) fiber.Handler {
	if opts.Skew == 0 {
		opts.Skew = authService.ClockSkew
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Secret == nil {
		opts.Secret = authService.Secret
	}

	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - No token provided")
		}

		if opts.BlacklistChecker != nil {
			listed, err := opts.BlacklistChecker(c.UserContext(), tokenString)
			if err != nil {
				log.Println("[ERROR] blacklist check:", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
			if listed {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			}
		}

		secret, err := opts.Secret()
		if err != nil {
			log.Println("[ERROR] JWT secret:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims, err := authService.ParseAccessToken(tokenString, secret, opts.Now(), opts.Skew)
		switch {
		case errors.Is(err, authService.ErrTokenExpired):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token expired")
		case err != nil:
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid token")
		}

		if opts.UserActive != nil {
			if err := opts.UserActive(c.UserContext(), claims.UserID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - User not found")
				}
				if errors.Is(err, ErrUserInactive) {
					return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
				}
				log.Println("[ERROR] user lookup:", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
		}

		c.Locals(helper.LocUserID, claims.UserID.String())
		c.Locals(helper.LocUserRole, claims.Role)
		return c.Next()
	}
}

// AuthJWTWithDB wires the blacklist and active-user checks to postgres.
func AuthJWTWithDB(db *gorm.DB) fiber.Handler {
	return AuthJWT(AuthJWTOpts{
		BlacklistChecker: func(ctx context.Context, token string) (bool, error) {
			return authRepo.IsTokenBlacklisted(ctx, db, token)
		},
		UserActive: func(ctx context.Context, id uuid.UUID) error {
			user, err := authRepo.FindUserByID(ctx, db, id)
			if err != nil {
				return err
			}
			if !user.IsActive {
				return ErrUserInactive
			}
			return nil
		},
	})
}
