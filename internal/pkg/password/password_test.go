//go:build unit

package password_test

import (
	"testing"

	"macondo-backend/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.Hash("2468")
	require.NoError(t, err)

	assert.NoError(t, password.Compare(hash, "2468"))
	assert.ErrorIs(t, password.Compare(hash, "1357"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.Compare("", "2468"), password.ErrInvalidPassword)

	_, err = password.Hash("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestComparePIN(t *testing.T) {
	legacy := password.LegacyPINHash("salt", "door1", "2468")
	require.True(t, password.IsLegacyPIN(legacy))

	bcryptHash, err := password.Hash("2468")
	require.NoError(t, err)
	require.False(t, password.IsLegacyPIN(bcryptHash))

	tests := []struct {
		name    string
		hash    string
		salt    string
		user    string
		pin     string
		wantErr error
	}{
		{name: "bcrypt", hash: bcryptHash, pin: "2468"},
		{name: "bcrypt mismatch", hash: bcryptHash, pin: "0000", wantErr: password.ErrComparisonFailed},
		{name: "legacy", hash: legacy, salt: "salt", user: "door1", pin: "2468"},
		{name: "legacy hash is bound to the username", hash: legacy, salt: "salt", user: "door2", pin: "2468", wantErr: password.ErrComparisonFailed},
		{name: "legacy without salt", hash: legacy, user: "door1", pin: "2468", wantErr: password.ErrInvalidPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.ComparePIN(tt.hash, tt.salt, tt.user, tt.pin)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
