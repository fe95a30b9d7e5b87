// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"aptads_backend/internals/configs"
)

const (
	accessTTLDefault = 24 * time.Hour
	// exp tolerance for clock drift between instances
	ClockSkew = 30 * time.Second
	// extra life of a blacklist row beyond the token's own exp
	blacklistGrace = 60 * time.Second
	// blacklist life when the token carries no readable exp
	blacklistFallback = 2 * time.Minute
)

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
	ErrNoSecret     = errors.New("JWT_SECRET is not set")
)

// AccessClaims is what an access token carries.
type AccessClaims struct {
	UserID    uuid.UUID
	Role      string
	ExpiresAt time.Time
}

func Secret() (string, error) {
	s := strings.TrimSpace(configs.JWTSecret)
	if s == "" {
		s = strings.TrimSpace(configs.GetEnv("JWT_SECRET"))
	}
	if s == "" {
		return "", ErrNoSecret
	}
	return s, nil
}

func AccessTTL() time.Duration {
	if h := configs.GetEnvInt("JWT_ACCESS_TTL_HOURS", 0); h > 0 {
		return time.Duration(h) * time.Hour
	}
	return accessTTLDefault
}

// IssueAccessToken signs an HS256 token with id, role, iat, exp.
func IssueAccessToken(userID uuid.UUID, role, secret string, now time.Time, ttl time.Duration) (string, time.Time, error) {
	exp := now.Add(ttl).UTC()
	claims := jwt.MapClaims{
		"id":   userID.String(),
		"role": role,
		"iat":  now.UTC().Unix(),
		"exp":  exp.Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, exp, nil
}

// ParseAccessToken verifies the signature and exp (with skew) and extracts the claims.
func ParseAccessToken(raw, secret string, now time.Time, skew time.Duration) (AccessClaims, error) {
	claims, err := parseSigned(raw, secret)
	if err != nil {
		return AccessClaims{}, err
	}
	exp, ok := expOf(claims)
	if !ok {
		return AccessClaims{}, fmt.Errorf("%w: no exp", ErrTokenInvalid)
	}
	if now.After(exp.Add(skew)) {
		return AccessClaims{}, ErrTokenExpired
	}
	idStr, _ := claims["id"].(string)
	id, err := uuid.Parse(strings.TrimSpace(idStr))
	if err != nil {
		return AccessClaims{}, fmt.Errorf("%w: bad id", ErrTokenInvalid)
	}
	role, _ := claims["role"].(string)
	return AccessClaims{UserID: id, Role: role, ExpiresAt: exp}, nil
}

// BlacklistUntil is how long a revoked token must stay listed.
func BlacklistUntil(raw, secret string, now time.Time) time.Time {
	claims, err := parseSigned(raw, secret)
	if err != nil {
		return now.Add(blacklistFallback)
	}
	exp, ok := expOf(claims)
	if !ok {
		return now.Add(blacklistFallback)
	}
	if exp.Before(now) {
		return now.Add(time.Minute)
	}
	return exp.Add(blacklistGrace)
}

func parseSigned(raw, secret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true, ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	return claims, nil
}

func expOf(claims jwt.MapClaims) (time.Time, bool) {
	switch v := claims["exp"].(type) {
	case float64:
		return time.Unix(int64(v), 0).UTC(), true
	case int64:
		return time.Unix(v, 0).UTC(), true
	}
	return time.Time{}, false
}
