package usecase

import (
	"weekchain-capacity/internal/pkg/errs"
	"weekchain-capacity/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, string, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	switch claims.Role {
	case jwt.RoleViewer, jwt.RoleAdmin:
	default:
		return uuid.Nil, "", errs.New("unknown role in token")
	}

	return claims.UserID, claims.Role, nil
}
