package commands

import (
	"context"
	"log/slog"
	"time"

	reqdto "macondo-backend/internal/handler/dto/request"
	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/pkg/jwt"
	"macondo-backend/internal/pkg/password"
	"macondo-backend/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.Mark(errs.New("invalid credentials"), errs.ErrUnauthorized)
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Identity  string
	Token     string
	ExpiresAt time.Time
}

type AuthCommands interface {
	StaffLogin(ctx context.Context, req reqdto.StaffLoginRequest) (*LoginResult, error)
	AdminLogin(ctx context.Context, req reqdto.AdminLoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow      shared.UnitOfWork
	staffJWT *jwt.Service
	adminJWT *jwt.Service
	pinSalt  string
	logger   *slog.Logger
}

func NewAuthCommands(uow shared.UnitOfWork, tokens Tokens, cfg config.Config, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		uow:      uow,
		staffJWT: tokens.Staff,
		adminJWT: tokens.Admin,
		pinSalt:  cfg.Staff.LegacyPINSalt,
		logger:   logger,
	}
}

// Tokens groups the two credential issuers. They use different secrets.
type Tokens struct {
	Staff *jwt.Service
	Admin *jwt.Service
}

func (a *authCommandsImpl) StaffLogin(ctx context.Context, req reqdto.StaffLoginRequest) (*LoginResult, error) {
	creds, err := req.ToDomain()
	if err != nil {
		return nil, validation(err)
	}

	member, err := a.uow.Direct().Staff().FindByUsername(ctx, creds.Username())
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			// same answer as a wrong PIN to avoid username enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !member.IsActive() {
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePIN(member.PINHash(), a.pinSalt, member.Username(), creds.PIN()); err != nil {
		return nil, ErrInvalidCredentials
	}
	if password.IsLegacyPIN(member.PINHash()) {
		a.upgradePIN(ctx, member.Username(), creds.PIN())
	}

	return a.issue(a.staffJWT, member.Username())
}

func (a *authCommandsImpl) AdminLogin(ctx context.Context, req reqdto.AdminLoginRequest) (*LoginResult, error) {
	creds, err := req.ToDomain()
	if err != nil {
		return nil, validation(err)
	}

	admin, err := a.uow.Direct().Admins().FindByEmail(ctx, creds.Email())
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := password.Compare(admin.PasswordHash, creds.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a.issue(a.adminJWT, admin.Email)
}

// upgradePIN rehashes a legacy PIN with bcrypt. Failure only costs another legacy check next time.
func (a *authCommandsImpl) upgradePIN(ctx context.Context, username, pin string) {
	hash, err := password.Hash(pin)
	if err == nil {
		_, err = a.uow.Direct().Staff().UpdatePINHash(ctx, username, hash)
	}
	if err != nil {
		a.logger.Warn("legacy PIN upgrade failed", "username", username, "error", err.Error())
		return
	}
	a.logger.Info("legacy PIN upgraded", "username", username)
}

func (a *authCommandsImpl) issue(svc *jwt.Service, identity string) (*LoginResult, error) {
	token, exp, err := svc.GenerateToken(identity)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	a.logger.Info("login succeeded", "identity", identity)
	return &LoginResult{Identity: identity, Token: token, ExpiresAt: exp}, nil
}
