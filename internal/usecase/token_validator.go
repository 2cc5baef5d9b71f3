package usecase

import (
	"context"

	"eatyaar/internal/pkg/jwt"
	"eatyaar/internal/usecase/shared"

	"github.com/google/uuid"
)

type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, string, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	uow        shared.UnitOfWork
}

func NewTokenValidator(jwtService *jwt.Service, uow shared.UnitOfWork) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService, uow: uow}
}

// ValidateToken checks the signature and confirms the subject still exists,
// so a token issued to a since-removed account stops working before expiry.
func (v *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, string, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	if _, err := v.uow.CommandReads().UserByID(ctx, claims.UserID); err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, claims.Phone, nil
}
