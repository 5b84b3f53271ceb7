package service

import (
	"fmt"
	"strings"

	"github.com/genzlaundry/pos-api/internal/config"
	"github.com/genzlaundry/pos-api/pkg/apperror"
	"github.com/genzlaundry/pos-api/pkg/utils"
)

// AuthService authenticates the single shop operator. There is no user
// table: the credential comes from configuration, hashed at startup when
// only a plain password is provided.
type AuthService struct {
	username     string
	passwordHash string
	jwtManager   *utils.JWTManager
}

// NewAuthService creates an auth service from the admin credential config.
func NewAuthService(admin config.AdminConfig, jwtManager *utils.JWTManager) (*AuthService, error) {
	hash := admin.PasswordHash
	if hash == "" {
		var err error
		hash, err = utils.HashPassword(admin.Password)
		if err != nil {
			return nil, fmt.Errorf("auth: failed to hash admin password: %w", err)
		}
	}
	return &AuthService{
		username:     admin.Username,
		passwordHash: hash,
		jwtManager:   jwtManager,
	}, nil
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Username    string
	AccessToken string
}

// Login checks the operator credential and returns a session token.
func (s *AuthService) Login(input *LoginInput) (*LoginOutput, error) {
	if strings.TrimSpace(input.Username) != s.username {
		return nil, apperror.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(input.Password, s.passwordHash) {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(s.username)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to generate token: %w", err)
	}

	return &LoginOutput{
		Username:    s.username,
		AccessToken: token,
	}, nil
}
