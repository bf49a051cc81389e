package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_GenerateToken(t *testing.T) {
	g := NewGenerator("test-secret", time.Hour)

	signed, err := g.GenerateToken(42, "test@example.com", "tester")
	require.NoError(t, err, "failed to generate token")
	require.NotEmpty(t, signed, "token is empty")

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err, "failed to parse generated token")
	require.True(t, token.Valid, "token should be valid")

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok, "claims should be MapClaims")
	assert.Equal(t, float64(42), claims["sub"], "sub claim does not match")
	assert.Equal(t, "test@example.com", claims["email"], "email claim does not match")
	assert.Equal(t, "tester", claims["user_name"], "user_name claim does not match")

	exp, ok := claims["exp"].(float64)
	require.True(t, ok, "exp claim should be numeric")
	assert.Greater(t, int64(exp), time.Now().Unix(), "token should not be expired yet")
}

func TestGenerator_RejectsTamperedToken(t *testing.T) {
	g := NewGenerator("test-secret", time.Hour)

	signed, err := g.GenerateToken(1, "a@example.com", "a")
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err, "verification with the wrong secret should fail")
}
