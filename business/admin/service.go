package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"cropRecommendation/pkg/logger"
	"cropRecommendation/pkg/utils"
)

const RoleAdmin = "admin"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrLoginDisabled      = errors.New("operator login is not configured")
)

type Config struct {
	Username     string
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
}

type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type Service struct {
	cfg Config
}

func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// Login checks the operator credentials and issues a token with the admin role.
func (s *Service) Login(ctx context.Context, username, password string) (Token, error) {
	if err := ctx.Err(); err != nil {
		return Token{}, fmt.Errorf("context error: %w", err)
	}

	if s.cfg.Username == "" || s.cfg.PasswordHash == "" || s.cfg.JWTSecret == "" {
		return Token{}, ErrLoginDisabled
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) == 1
	passOK := utils.CheckPassword(password, s.cfg.PasswordHash)
	if !userOK || !passOK {
		logger.Warn("Rejected operator login", "username", username)
		return Token{}, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.cfg.TokenTTL)
	token, err := utils.GenerateJWT(s.cfg.JWTSecret, s.cfg.Username, RoleAdmin, s.cfg.TokenTTL)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return Token{}, errors.New("failed to generate token")
	}

	return Token{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
