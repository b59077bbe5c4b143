package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

// staff rows imported from the previous system carry hex(sha256("salt:username:pin"))
var legacyPINHash = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Hash is used for admin passwords and staff PINs alike.
func Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

func Compare(hashed, secret string) error {
	if hashed == "" || secret == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrComparisonFailed
	}
	return err
}

// IsLegacyPIN reports whether hashed predates bcrypt.
func IsLegacyPIN(hashed string) bool {
	return legacyPINHash.MatchString(hashed)
}

func LegacyPINHash(salt, username, pin string) string {
	sum := sha256.Sum256([]byte(salt + ":" + username + ":" + pin))
	return hex.EncodeToString(sum[:])
}

// ComparePIN accepts bcrypt hashes and, when salt is set, legacy salted SHA-256 hashes.
func ComparePIN(hashed, salt, username, pin string) error {
	if !IsLegacyPIN(hashed) {
		return Compare(hashed, pin)
	}
	if salt == "" || pin == "" {
		return ErrInvalidPassword
	}
	if subtle.ConstantTimeCompare([]byte(hashed), []byte(LegacyPINHash(salt, username, pin))) != 1 {
		return ErrComparisonFailed
	}
	return nil
}
