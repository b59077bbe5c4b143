package request

import (
	"macondo-backend/internal/domain/auth"
)

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *AdminLoginRequest) ToDomain() (auth.AdminCredentials, error) {
	return auth.NewAdminCredentials(r.Email, r.Password)
}

type StaffLoginRequest struct {
	Username string `json:"username" binding:"required"`
	PIN      string `json:"pin" binding:"required"`
}

func (r *StaffLoginRequest) ToDomain() (auth.StaffCredentials, error) {
	return auth.NewStaffCredentials(r.Username, r.PIN)
}

type RedeemRequest struct {
	Token string `json:"token"`
}
