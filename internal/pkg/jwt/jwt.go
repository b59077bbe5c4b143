package jwt

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrWrongKind    = errors.New("token kind mismatch")
)

// Kind separates staff scanner credentials from admin sessions signed by the same code path.
type Kind string

const (
	KindStaff Kind = "staff"
	KindAdmin Kind = "admin"
)

type Claims struct {
	Identity string `json:"identity"`
	Kind     Kind   `json:"kind"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	kind          Kind
	tokenDuration time.Duration
	now           func() time.Time
}

func NewService(secretKey string, kind Kind, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		kind:          kind,
		tokenDuration: tokenDuration,
		now:           time.Now,
	}
}

// WithNow overrides the time source used for issuing and verifying tokens.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Duration() time.Duration {
	return s.tokenDuration
}

func (s *Service) GenerateToken(identity string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.tokenDuration)
	claims := Claims{
		Identity: identity,
		Kind:     s.kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Kind != s.kind {
		return nil, ErrWrongKind
	}
	if strings.TrimSpace(claims.Identity) == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
