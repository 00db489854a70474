package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/models"
	"bizsuite/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewAuthHandler(t *testing.T) {
	mockService := &mocks.MockAuthService{}
	handler := NewAuthHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestAuthHandler_Register(t *testing.T) {
	accountID := primitive.NewObjectID()
	now := time.Now()

	validBody := models.RegisterRequest{
		Email:    "aziz@example.com",
		Password: "password123",
		Name:     "Aziz Karimov",
	}

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful registration",
			body: validBody,
			mockSetup: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
					return &models.AuthResponse{
						AccessToken: "access-token",
						ExpiresIn:   900,
						Account: models.Account{
							ID:        accountID,
							Email:     req.Email,
							Name:      req.Name,
							CreatedAt: now,
							UpdatedAt: now,
						},
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := decodeData(t, w)
				assert.Equal(t, "access-token", data["accessToken"])
				account := data["account"].(map[string]interface{})
				assert.Equal(t, "aziz@example.com", account["email"])
				assert.NotContains(t, account, "password")
			},
		},
		{
			name:           "invalid JSON body",
			body:           "invalid json",
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password",
			body:           models.RegisterRequest{Email: "aziz@example.com", Password: "short", Name: "Aziz"},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "account already exists",
			body: validBody,
			mockSetup: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
					return nil, apperrors.ErrAccountAlreadyExists
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "internal server error",
			body: validBody,
			mockSetup: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{}
			tt.mockSetup(mockService)

			handler := NewAuthHandler(mockService)

			router := gin.New()
			router.POST("/auth/register", handler.Register)

			w := doRequest(router, http.MethodPost, "/auth/register", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	validBody := models.LoginRequest{Email: "aziz@example.com", Password: "password123"}

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name: "successful login",
			body: validBody,
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
					return &models.AuthResponse{AccessToken: "access-token", ExpiresIn: 900}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid email",
			body:           models.LoginRequest{Email: "not-an-email", Password: "password123"},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid credentials",
			body: validBody,
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
					return nil, apperrors.ErrInvalidCredentials
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "internal server error",
			body: validBody,
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{}
			tt.mockSetup(mockService)

			handler := NewAuthHandler(mockService)

			router := gin.New()
			router.POST("/auth/login", handler.Login)

			w := doRequest(router, http.MethodPost, "/auth/login", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
