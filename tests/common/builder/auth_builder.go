//go:build unit || e2e

package builder

import (
	reqdto "macondo-backend/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	Username string
	PIN      string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "owner@macondo.test",
		Password: "password123",
		Username: "door1",
		PIN:      "2468",
	}
}

func (a *AuthBuilder) WithPassword(p string) *AuthBuilder {
	a.Password = p
	return a
}

func (a *AuthBuilder) WithUsername(u string) *AuthBuilder {
	a.Username = u
	return a
}

func (a *AuthBuilder) WithPIN(pin string) *AuthBuilder {
	a.PIN = pin
	return a
}

func (a *AuthBuilder) BuildAdminDTO() reqdto.AdminLoginRequest {
	return reqdto.AdminLoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildStaffDTO() reqdto.StaffLoginRequest {
	return reqdto.StaffLoginRequest{
		Username: a.Username,
		PIN:      a.PIN,
	}
}
