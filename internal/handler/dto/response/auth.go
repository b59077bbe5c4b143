package response

import (
	"time"

	"macondo-backend/internal/usecase/commands"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	Identity    string    `json:"identity"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.Token,
		Identity:    r.Identity,
		ExpiresAt:   r.ExpiresAt,
	}
}
