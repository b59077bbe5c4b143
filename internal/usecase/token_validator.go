package usecase

import (
	"context"

	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/pkg/jwt"
	"macondo-backend/internal/usecase/commands"
	"macondo-backend/internal/usecase/shared"
)

// TokenValidator provides credential checks for middleware
type TokenValidator interface {
	// ValidateStaff checks the signature and expiry only; it never touches the store.
	ValidateStaff(tokenString string) (string, error)
	// ValidateAdmin also re-checks the allow-list, so a removed admin loses access at once.
	ValidateAdmin(ctx context.Context, tokenString string) (string, error)
}

type tokenValidatorImpl struct {
	staffJWT *jwt.Service
	adminJWT *jwt.Service
	uow      shared.UnitOfWork
}

func NewTokenValidator(tokens commands.Tokens, uow shared.UnitOfWork) TokenValidator {
	return &tokenValidatorImpl{
		staffJWT: tokens.Staff,
		adminJWT: tokens.Admin,
		uow:      uow,
	}
}

func (t *tokenValidatorImpl) ValidateStaff(tokenString string) (string, error) {
	claims, err := t.staffJWT.ValidateToken(tokenString)
	if err != nil {
		return "", errs.Mark(err, errs.ErrUnauthorized)
	}
	return claims.Identity, nil
}

func (t *tokenValidatorImpl) ValidateAdmin(ctx context.Context, tokenString string) (string, error) {
	claims, err := t.adminJWT.ValidateToken(tokenString)
	if err != nil {
		return "", errs.Mark(err, errs.ErrUnauthorized)
	}

	allowed, err := t.uow.Direct().Admins().IsAllowed(ctx, claims.Identity)
	if err != nil {
		return "", err
	}
	if !allowed {
		return "", errs.Wrapf(errs.ErrForbidden, "%s is not an admin", claims.Identity)
	}
	return claims.Identity, nil
}
