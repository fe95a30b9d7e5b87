package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestIssueAndParseAccessToken(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	id := uuid.New()

	tok, exp, err := IssueAccessToken(id, "admin", testSecret, now, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), exp)

	got, err := ParseAccessToken(tok, testSecret, now, ClockSkew)
	require.NoError(t, err)
	assert.Equal(t, id, got.UserID)
	assert.Equal(t, "admin", got.Role)
	assert.Equal(t, exp, got.ExpiresAt)

	// within skew still valid, beyond it expired
	_, err = ParseAccessToken(tok, testSecret, exp.Add(20*time.Second), ClockSkew)
	assert.NoError(t, err)
	_, err = ParseAccessToken(tok, testSecret, exp.Add(31*time.Second), ClockSkew)
	assert.ErrorIs(t, err, ErrTokenExpired)

	_, err = ParseAccessToken(tok, "other-secret", now, ClockSkew)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = ParseAccessToken("garbage", testSecret, now, ClockSkew)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestBlacklistUntil(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tok, exp, err := IssueAccessToken(uuid.New(), "manager", testSecret, now, 2*time.Hour)
	require.NoError(t, err)

	assert.Equal(t, exp.Add(blacklistGrace), BlacklistUntil(tok, testSecret, now))
	assert.Equal(t, now.Add(blacklistFallback), BlacklistUntil("garbage", testSecret, now))
	assert.Equal(t, exp.Add(3*time.Hour).Add(time.Minute), BlacklistUntil(tok, testSecret, exp.Add(3*time.Hour)))
}
