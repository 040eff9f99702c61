package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := 7 * 24 * time.Hour
	maker := NewJWTMaker(secretKey, tokenTTL)

	tests := []struct {
		name   string
		userID int
	}{
		{name: "seeded admin id", userID: 1},
		{name: "regular user id", userID: 42},
		{name: "large id", userID: 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.userID)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.userID, claims.UserID)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewJWTMaker(secretKey, time.Hour)

	validToken, err := maker.GenerateToken(7)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "malformed token", token: "invalid.token.here"},
		{name: "expired token", token: createExpiredToken(t, secretKey)},
		{name: "wrong secret key", token: createTokenWithWrongSecret(t)},
		{name: "tampered token", token: validToken + "tampered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTMaker_DifferentSecretKeys(t *testing.T) {
	maker1 := NewJWTMaker("first_secret_key", time.Hour)
	maker2 := NewJWTMaker("different_secret_key", time.Hour)

	token, err := maker1.GenerateToken(3)
	require.NoError(t, err)

	claims, err := maker2.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = maker1.ParseToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
}

func TestJWTMaker_TokenExpiration(t *testing.T) {
	maker := NewJWTMaker("test_secret_key", 100*time.Millisecond)

	token, err := maker.GenerateToken(5)
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.NotNil(t, claims)

	time.Sleep(150 * time.Millisecond)

	_, err = maker.ParseToken(token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func createExpiredToken(t *testing.T, secretKey string) string {
	maker := NewJWTMaker(secretKey, -time.Hour)
	token, err := maker.GenerateToken(7)
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongMaker := NewJWTMaker("wrong_secret_key", time.Hour)
	token, err := wrongMaker.GenerateToken(7)
	require.NoError(t, err)
	return token
}
