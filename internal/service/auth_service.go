package service

import (
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	appErrors "github.com/qlhs-edu/dashboard-bff/pkg/errors"
)

// AuthConfig defines configuration for token validation. Tokens are issued by
// the identity provider, not by this service.
type AuthConfig struct {
	TokenSecret string
}

// AuthService validates bearer tokens and extracts the teacher identity.
type AuthService struct {
	config AuthConfig
	logger *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(config AuthConfig, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{config: config, logger: logger}
}

// ValidateToken parses and verifies an HS256 bearer token and returns the
// embedded teacher claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.TeacherClaims, error) {
	claims := &models.TeacherClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "unexpected signing method")
		}
		return []byte(s.config.TokenSecret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}
	if !token.Valid || claims.TeacherID() == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}
	return claims, nil
}
