//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper mints credentials signed with the same secrets the server under test uses.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) StaffToken(t *testing.T, username string) string {
	t.Helper()
	return h.mint(t, jwt.NewService(h.cfg.StaffSecret, jwt.KindStaff, h.cfg.StaffDuration), username)
}

func (h *JWTHelper) AdminToken(t *testing.T, email string) string {
	t.Helper()
	return h.mint(t, jwt.NewService(h.cfg.AdminSecret, jwt.KindAdmin, h.cfg.AdminDuration), email)
}

// ExpiredStaffToken is issued two durations in the past.
func (h *JWTHelper) ExpiredStaffToken(t *testing.T, username string) string {
	t.Helper()
	issued := time.Now().Add(-2 * h.cfg.StaffDuration)
	svc := jwt.NewService(h.cfg.StaffSecret, jwt.KindStaff, h.cfg.StaffDuration).
		WithNow(func() time.Time { return issued })
	return h.mint(t, svc, username)
}

// ForgedAdminToken is signed with the staff secret, which admin routes must reject.
func (h *JWTHelper) ForgedAdminToken(t *testing.T, email string) string {
	t.Helper()
	return h.mint(t, jwt.NewService(h.cfg.StaffSecret, jwt.KindAdmin, h.cfg.AdminDuration), email)
}

func (h *JWTHelper) mint(t *testing.T, svc *jwt.Service, identity string) string {
	t.Helper()
	token, _, err := svc.GenerateToken(identity)
	require.NoError(t, err)
	return token
}
