package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 240*time.Hour)

	token, exp, err := m.GenerateAccessToken("user-1", "a@b.c", "alice", "Alice A")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "Alice A", claims.FullName)
}

func TestRefreshTokenCarriesOnlyID(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 240*time.Hour)

	token, _, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := m.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestExpiredAccessTokenFails(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", -time.Minute, 240*time.Hour)

	token, _, err := m.GenerateAccessToken("user-1", "a@b.c", "alice", "Alice A")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestTokensUseIndependentSecrets(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 240*time.Hour)

	access, _, err := m.GenerateAccessToken("user-1", "a@b.c", "alice", "Alice A")
	require.NoError(t, err)

	// An access token must not verify as a refresh token.
	_, err = m.ParseRefreshToken(access)
	assert.Error(t, err)
}

func TestTamperedTokenFails(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 240*time.Hour)
	other := NewJWTManager("different-secret", "refresh-secret", time.Hour, 240*time.Hour)

	token, _, err := other.GenerateAccessToken("user-1", "a@b.c", "alice", "Alice A")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.Error(t, err)
}
