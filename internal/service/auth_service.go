// Package service contains business logic for the application.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/models"
	"bizsuite/internal/repository"
	"bizsuite/pkg/auth"

	"github.com/sirupsen/logrus"
)

// AuthService handles authentication business logic.
type AuthService struct {
	accountRepo    repository.AccountRepository
	jwtManager     auth.TokenManager
	accessTokenTTL time.Duration
}

// AuthServiceConfig holds configuration for AuthService.
type AuthServiceConfig struct {
	AccountRepo    repository.AccountRepository
	JWTManager     auth.TokenManager
	AccessTokenTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		accountRepo:    cfg.AccountRepo,
		jwtManager:     cfg.JWTManager,
		accessTokenTTL: cfg.AccessTokenTTL,
	}
}

// Register creates a new account and returns an access token.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Email:    strings.TrimSpace(req.Email),
		Password: hashedPassword,
		Name:     strings.TrimSpace(req.Name),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	logrus.WithField("user_id", account.ID.Hex()).Info("Account registered")

	return s.generateAuthResponse(account)
}

// Login authenticates an account and returns an access token.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	account, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(req.Password, account.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateAuthResponse(account)
}

func (s *AuthService) generateAuthResponse(account *models.Account) (*models.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(account.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(s.accessTokenTTL.Seconds()),
		Account:     *account,
	}, nil
}
