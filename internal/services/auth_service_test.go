package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/drilathedev/virtual-view-estate/internal/config"
	"github.com/drilathedev/virtual-view-estate/internal/dtos"
	"github.com/drilathedev/virtual-view-estate/internal/middleware"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

func newTestAuthService(t *testing.T) (AuthService, *config.Config) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		AdminEmails:       []string{"admin@example.com"},
		AdminPasswordHash: string(hash),
		RSAPrivateKey:     key,
		RSAPublicKey:      &key.PublicKey,
	}
	return NewAuthService(cfg), cfg
}

func TestLoginSuccess(t *testing.T) {
	svc, cfg := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), dtos.LoginRequest{
		Email:    "Admin@Example.com ",
		Password: "hunter2",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, int64(24*60*60), resp.ExpiresIn)

	// The issued token round-trips through the verification the middleware runs.
	token, err := jwt.Parse(resp.Token, func(*jwt.Token) (any, error) {
		return cfg.RSAPublicKey, nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, middleware.TokenIssuer, claims["iss"])
	require.Equal(t, "admin@example.com", claims["sub"])
	require.Equal(t, "admin", claims["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), dtos.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginNonAllowlistedEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	// Same error as a bad password: the allowlist must not be probeable.
	_, err := svc.Login(context.Background(), dtos.LoginRequest{
		Email:    "intruder@example.com",
		Password: "hunter2",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
