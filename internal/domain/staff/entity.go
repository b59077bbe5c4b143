package staff

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

var (
	ErrInvalidUsername = errors.New("username is required")
	ErrInvalidPIN      = errors.New("pin must be 4 to 12 characters")
)

const (
	minPINLength = 4
	maxPINLength = 12
)

// NormalizeUsername lowercases and drops all whitespace, so "Door Ana" and "doorana" are one account.
func NormalizeUsername(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

func ValidateUsername(s string) (string, error) {
	u := NormalizeUsername(s)
	if u == "" {
		return "", ErrInvalidUsername
	}
	return u, nil
}

func ValidatePIN(pin string) (string, error) {
	pin = strings.TrimSpace(pin)
	if len(pin) < minPINLength || len(pin) > maxPINLength {
		return "", ErrInvalidPIN
	}
	return pin, nil
}

type Member struct {
	id        uuid.UUID
	username  string
	pinHash   string
	active    bool
	createdAt time.Time
}

func NewMember(username, pinHash string, now time.Time) (*Member, error) {
	u, err := ValidateUsername(username)
	if err != nil {
		return nil, err
	}
	return &Member{
		id:        uuid.New(),
		username:  u,
		pinHash:   pinHash,
		active:    true,
		createdAt: now,
	}, nil
}

func ReconstructMember(id uuid.UUID, username, pinHash string, active bool, createdAt time.Time) *Member {
	return &Member{
		id:        id,
		username:  username,
		pinHash:   pinHash,
		active:    active,
		createdAt: createdAt,
	}
}

func (m *Member) ID() uuid.UUID        { return m.id }
func (m *Member) Username() string     { return m.username }
func (m *Member) PINHash() string      { return m.pinHash }
func (m *Member) IsActive() bool       { return m.active }
func (m *Member) CreatedAt() time.Time { return m.createdAt }
