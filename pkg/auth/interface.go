package auth

//go:generate mockgen -destination=mocks/mock_jwt.go -package=mocks bizsuite/pkg/auth TokenManager

// TokenManager issues and verifies account access tokens. The auth
// middleware and the auth service depend on it.
type TokenManager interface {
	GenerateToken(userID string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var _ TokenManager = (*JWTManager)(nil)
