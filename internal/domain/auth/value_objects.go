package auth

import (
	"errors"
	"strings"

	"macondo-backend/internal/domain/reservation"
	"macondo-backend/internal/domain/staff"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingPassword    = errors.New("password is required")
)

// AdminCredentials are checked against the admins allow-list.
type AdminCredentials struct {
	email    string
	password string
}

func NewAdminCredentials(emailStr, passwordStr string) (AdminCredentials, error) {
	email, err := reservation.NormalizeEmail(emailStr)
	if err != nil {
		return AdminCredentials{}, err
	}
	if passwordStr == "" {
		return AdminCredentials{}, ErrMissingPassword
	}
	return AdminCredentials{email: email, password: passwordStr}, nil
}

func (c AdminCredentials) Email() string    { return c.email }
func (c AdminCredentials) Password() string { return c.password }

// StaffCredentials identify a door scanner account.
type StaffCredentials struct {
	username string
	pin      string
}

func NewStaffCredentials(username, pin string) (StaffCredentials, error) {
	u, err := staff.ValidateUsername(username)
	if err != nil {
		return StaffCredentials{}, err
	}
	p := strings.TrimSpace(pin)
	if p == "" {
		return StaffCredentials{}, staff.ErrInvalidPIN
	}
	return StaffCredentials{username: u, pin: p}, nil
}

func (c StaffCredentials) Username() string { return c.username }
func (c StaffCredentials) PIN() string      { return c.pin }
