package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kyudon/police-intake/internal/config"
	"github.com/kyudon/police-intake/internal/dto"
)

// AuthService authenticates the single ops-panel operator configured
// through the environment and issues short-lived access tokens.
type AuthService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if s.cfg.OpsUsername == "" || s.cfg.OpsPasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if req.Username != s.cfg.OpsUsername {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.OpsPasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(req.Username)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.cfg.JWTAccessExpiry.Seconds()),
	}, nil
}

func (s *AuthService) generateAccessToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
