package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/drilathedev/virtual-view-estate/internal/config"
	"github.com/drilathedev/virtual-view-estate/internal/dtos"
	"github.com/drilathedev/virtual-view-estate/internal/middleware"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

const tokenTTL = 24 * time.Hour

// AuthService signs admin sessions. Identity is an allowlisted email plus the
// deployment's admin password; there are no roles beyond "admin".
type AuthService interface {
	Login(ctx context.Context, req dtos.LoginRequest) (*dtos.LoginResponse, error)
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) Login(_ context.Context, req dtos.LoginRequest) (*dtos.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !s.cfg.IsAdminEmail(email) {
		// Same error as a bad password so the allowlist is not probeable.
		return nil, utils.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":  middleware.TokenIssuer,
		"sub":  email,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(s.cfg.RSAPrivateKey)
	if err != nil {
		return nil, err
	}

	utils.Logger.Infof("admin login: %s", email)
	return &dtos.LoginResponse{
		Token:     signed,
		ExpiresIn: int64(tokenTTL.Seconds()),
	}, nil
}
