//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"macondo-backend/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	now := time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	staff := jwt.NewService("staff-secret", jwt.KindStaff, 12*time.Hour).WithNow(clock)

	t.Run("round trip keeps identity and kind", func(t *testing.T) {
		token, exp, err := staff.GenerateToken("door1")
		require.NoError(t, err)
		assert.Equal(t, now.Add(12*time.Hour), exp)

		claims, err := staff.ValidateToken(" " + token + " ")
		require.NoError(t, err)
		assert.Equal(t, "door1", claims.Identity)
		assert.Equal(t, jwt.KindStaff, claims.Kind)
	})

	t.Run("expired after the duration", func(t *testing.T) {
		token, _, err := staff.GenerateToken("door1")
		require.NoError(t, err)

		later := jwt.NewService("staff-secret", jwt.KindStaff, 12*time.Hour).
			WithNow(func() time.Time { return now.Add(13 * time.Hour) })
		_, err = later.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("same secret but other kind", func(t *testing.T) {
		token, _, err := staff.GenerateToken("door1")
		require.NoError(t, err)

		admin := jwt.NewService("staff-secret", jwt.KindAdmin, time.Hour).WithNow(clock)
		_, err = admin.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrWrongKind)
	})

	t.Run("foreign secret", func(t *testing.T) {
		token, _, err := jwt.NewService("other", jwt.KindStaff, time.Hour).WithNow(clock).GenerateToken("door1")
		require.NoError(t, err)

		_, err = staff.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("empty and garbage", func(t *testing.T) {
		for _, tok := range []string{"", "   ", "a.b.c"} {
			_, err := staff.ValidateToken(tok)
			assert.ErrorIs(t, err, jwt.ErrInvalidToken, tok)
		}
	})

	t.Run("blank identity is rejected", func(t *testing.T) {
		token, _, err := staff.GenerateToken("")
		require.NoError(t, err)
		_, err = staff.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
