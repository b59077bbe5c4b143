package commands

import (
	"context"
	"log/slog"

	"macondo-backend/internal/domain/staff"
	reqdto "macondo-backend/internal/handler/dto/request"
	"macondo-backend/internal/pkg/clock"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/pkg/password"
	"macondo-backend/internal/usecase/shared"
)

var ErrStaffExists = errs.Mark(errs.New("staff username already exists"), errs.ErrConflict)

type StaffCommands interface {
	Create(ctx context.Context, req reqdto.CreateStaffRequest) (*staff.Member, error)
	ResetPIN(ctx context.Context, username string, req reqdto.ResetStaffPINRequest) error
	SetActive(ctx context.Context, username string, active bool) error
	Delete(ctx context.Context, username string) error
}

type staffCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewStaffCommands(uow shared.UnitOfWork, clock clock.Clock, logger *slog.Logger) StaffCommands {
	return &staffCommandsImpl{uow: uow, clock: clock, logger: logger}
}

func (s *staffCommandsImpl) Create(ctx context.Context, req reqdto.CreateStaffRequest) (*staff.Member, error) {
	username, err := staff.ValidateUsername(req.Username)
	if err != nil {
		return nil, validation(err)
	}
	pinHash, err := hashPIN(req.PIN)
	if err != nil {
		return nil, err
	}
	m, err := staff.NewMember(username, pinHash, s.clock.Now())
	if err != nil {
		return nil, validation(err)
	}

	if err := s.uow.Direct().Staff().Create(ctx, m); err != nil {
		if errs.Is(err, errs.ErrConflict) {
			return nil, ErrStaffExists
		}
		return nil, errs.Wrap(err, "create staff user")
	}
	s.logger.Info("staff user created", "username", m.Username())
	return m, nil
}

func (s *staffCommandsImpl) ResetPIN(ctx context.Context, username string, req reqdto.ResetStaffPINRequest) error {
	pinHash, err := hashPIN(req.PIN)
	if err != nil {
		return err
	}
	found, err := s.uow.Direct().Staff().UpdatePINHash(ctx, staff.NormalizeUsername(username), pinHash)
	return staffResult(found, err)
}

func (s *staffCommandsImpl) SetActive(ctx context.Context, username string, active bool) error {
	found, err := s.uow.Direct().Staff().SetActive(ctx, staff.NormalizeUsername(username), active)
	return staffResult(found, err)
}

func (s *staffCommandsImpl) Delete(ctx context.Context, username string) error {
	found, err := s.uow.Direct().Staff().Delete(ctx, staff.NormalizeUsername(username))
	return staffResult(found, err)
}

func hashPIN(pin string) (string, error) {
	p, err := staff.ValidatePIN(pin)
	if err != nil {
		return "", validation(err)
	}
	h, err := password.Hash(p)
	if err != nil {
		return "", errs.Wrap(err, "hash pin")
	}
	return h, nil
}

func staffResult(found bool, err error) error {
	if err != nil {
		return err
	}
	if !found {
		return errs.Wrap(errs.ErrNotFound, "staff user not found")
	}
	return nil
}
