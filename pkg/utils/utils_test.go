package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	token, err := GenerateJWT("secret", "operator", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Subject)
	assert.Equal(t, "admin", claims.Role)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
}

func TestParseJWT_Rejects(t *testing.T) {
	token, err := GenerateJWT("secret", "operator", "admin", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := GenerateJWT("secret", "operator", "admin", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT("secret", expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseJWT("secret", "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateJWT_EmptySecret(t *testing.T) {
	_, err := GenerateJWT("", "operator", "admin", time.Hour)
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.True(t, CheckPassword("s3cret!", string(hash)))
	assert.False(t, CheckPassword("wrong", string(hash)))
	assert.False(t, CheckPassword("s3cret!", "not-a-hash"))
}
