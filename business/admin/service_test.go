package admin

import (
	"context"
	"testing"
	"time"

	"cropRecommendation/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)

	return NewService(Config{
		Username:     "operator",
		PasswordHash: string(hash),
		JWTSecret:    "secret",
		TokenTTL:     30 * time.Minute,
	})
}

func TestLogin_Success(t *testing.T) {
	tok, err := newTestService(t).Login(context.Background(), "operator", "correct horse")
	require.NoError(t, err)

	assert.Equal(t, "Bearer", tok.TokenType)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), tok.ExpiresAt, time.Minute)

	claims, err := utils.ParseJWT("secret", tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "operator", claims.Subject)
}

func TestLogin_Rejected(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "operator", password: "battery staple"},
		{name: "wrong username", username: "root", password: "correct horse"},
		{name: "empty", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLogin_NotConfigured(t *testing.T) {
	_, err := NewService(Config{}).Login(context.Background(), "operator", "x")
	assert.ErrorIs(t, err, ErrLoginDisabled)
}
