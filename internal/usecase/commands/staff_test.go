//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "macondo-backend/internal/handler/dto/request"
	"macondo-backend/internal/infra/store"
	"macondo-backend/internal/infra/uow"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/pkg/jwt"
	"macondo-backend/internal/pkg/password"
	"macondo-backend/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokens(now func() time.Time) commands.Tokens {
	return commands.Tokens{
		Staff: jwt.NewService("staff-secret", jwt.KindStaff, 12*time.Hour).WithNow(now),
		Admin: jwt.NewService("admin-secret", jwt.KindAdmin, time.Hour).WithNow(now),
	}
}

func TestStaffCommands(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	cmds := commands.NewStaffCommands(e.uow, e.clock, discardLogger())

	m, err := cmds.Create(ctx, reqdto.CreateStaffRequest{Username: " Door.One ", PIN: "1234"})
	require.NoError(t, err)
	assert.NotEqual(t, "1234", m.PINHash())
	assert.True(t, m.IsActive())

	t.Run("usernames are unique after normalisation", func(t *testing.T) {
		_, err := cmds.Create(ctx, reqdto.CreateStaffRequest{Username: "DOOR.ONE", PIN: "9999"})
		assert.ErrorIs(t, err, commands.ErrStaffExists)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("pin length is enforced", func(t *testing.T) {
		_, err := cmds.Create(ctx, reqdto.CreateStaffRequest{Username: "bar", PIN: "12"})
		assert.True(t, errs.Is(err, errs.ErrValidation))

		err = cmds.ResetPIN(ctx, m.Username(), reqdto.ResetStaffPINRequest{PIN: "1234567890123"})
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("unknown users", func(t *testing.T) {
		assert.True(t, errs.Is(cmds.SetActive(ctx, "ghost", false), errs.ErrNotFound))
		assert.True(t, errs.Is(cmds.Delete(ctx, "ghost"), errs.ErrNotFound))
	})
}

func TestStaffLogin(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	staffCmds := commands.NewStaffCommands(e.uow, e.clock, discardLogger())
	tokens := testTokens(e.clock.Now)
	auth := commands.NewAuthCommands(e.uow, tokens, e.cfg, discardLogger())

	_, err := staffCmds.Create(ctx, reqdto.CreateStaffRequest{Username: "door1", PIN: "4321"})
	require.NoError(t, err)

	res, err := auth.StaffLogin(ctx, reqdto.StaffLoginRequest{Username: "Door1", PIN: "4321"})
	require.NoError(t, err)
	assert.Equal(t, "door1", res.Identity)
	assert.Equal(t, eventNight.Add(12*time.Hour), res.ExpiresAt)

	claims, err := tokens.Staff.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "door1", claims.Identity)
	_, err = tokens.Admin.ValidateToken(res.Token)
	assert.Error(t, err)

	_, err = auth.StaffLogin(ctx, reqdto.StaffLoginRequest{Username: "door1", PIN: "0000"})
	assert.ErrorIs(t, err, commands.ErrInvalidCredentials)

	_, err = auth.StaffLogin(ctx, reqdto.StaffLoginRequest{Username: "nobody", PIN: "4321"})
	assert.ErrorIs(t, err, commands.ErrInvalidCredentials)

	require.NoError(t, staffCmds.SetActive(ctx, "door1", false))
	_, err = auth.StaffLogin(ctx, reqdto.StaffLoginRequest{Username: "door1", PIN: "4321"})
	assert.ErrorIs(t, err, commands.ErrInvalidCredentials)

	require.NoError(t, staffCmds.SetActive(ctx, "door1", true))
	require.NoError(t, staffCmds.ResetPIN(ctx, "door1", reqdto.ResetStaffPINRequest{PIN: "8765"}))
	_, err = auth.StaffLogin(ctx, reqdto.StaffLoginRequest{Username: "door1", PIN: "8765"})
	assert.NoError(t, err)
}

func TestStaffLoginLegacyPIN(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	staffCmds := commands.NewStaffCommands(e.uow, e.clock, discardLogger())
	auth := commands.NewAuthCommands(e.uow, testTokens(e.clock.Now), e.cfg, discardLogger())

	_, err := staffCmds.Create(ctx, reqdto.CreateStaffRequest{Username: "door2", PIN: "0000"})
	require.NoError(t, err)
	legacy := password.LegacyPINHash(e.cfg.Staff.LegacyPINSalt, "door2", "1357")
	ok, err := e.uow.Direct().Staff().UpdatePINHash(ctx, "door2", legacy)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = auth.StaffLogin(ctx, reqdto.StaffLoginRequest{Username: "door2", PIN: "9999"})
	assert.ErrorIs(t, err, commands.ErrInvalidCredentials)

	_, err = auth.StaffLogin(ctx, reqdto.StaffLoginRequest{Username: "door2", PIN: "1357"})
	require.NoError(t, err)

	m, err := e.uow.Direct().Staff().FindByUsername(ctx, "door2")
	require.NoError(t, err)
	assert.False(t, password.IsLegacyPIN(m.PINHash()), "hash is upgraded to bcrypt")

	_, err = auth.StaffLogin(ctx, reqdto.StaffLoginRequest{Username: "door2", PIN: "1357"})
	assert.NoError(t, err)
}

func TestAdminLogin(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	hash, err := password.Hash("correct horse")
	require.NoError(t, err)
	mem := store.NewMemory()
	_, err = mem.Insert(ctx, "admins", store.Row{
		"email":         "owner@macondo.test",
		"password_hash": hash,
		"created_at":    eventNight,
	})
	require.NoError(t, err)

	tokens := testTokens(e.clock.Now)
	auth := commands.NewAuthCommands(uow.NewStoreUoW(mem, e.clock, discardLogger()), tokens, e.cfg, discardLogger())

	res, err := auth.AdminLogin(ctx, reqdto.AdminLoginRequest{Email: "owner@macondo.test", Password: "correct horse"})
	require.NoError(t, err)
	claims, err := tokens.Admin.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "owner@macondo.test", claims.Identity)

	_, err = auth.AdminLogin(ctx, reqdto.AdminLoginRequest{Email: "owner@macondo.test", Password: "wrong"})
	assert.ErrorIs(t, err, commands.ErrInvalidCredentials)

	_, err = auth.AdminLogin(ctx, reqdto.AdminLoginRequest{Email: "intruder@macondo.test", Password: "correct horse"})
	assert.True(t, errs.Is(err, errs.ErrUnauthorized))
}
