package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	tokenStr, err := GenerateJWT("chef@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	token, err := ValidateJWT(tokenStr)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "chef@example.com", claims["email"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateRefreshTokenCarriesSession(t *testing.T) {
	tokenStr, err := GenerateRefreshToken("chef@example.com", "session-123")
	require.NoError(t, err)

	token, err := ValidateJWT(tokenStr)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", claims["type"])
	assert.Equal(t, "session-123", claims["sessionId"])
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, ValidatePassword(hash, "correct horse battery staple"))
	assert.False(t, ValidatePassword(hash, "wrong password"))
}
