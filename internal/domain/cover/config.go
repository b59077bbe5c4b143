package cover

import (
	"errors"
	"strings"
	"time"

	"macondo-backend/internal/pkg/patch"
)

var (
	ErrMissingDJName = errors.New("dj_name is required")
	ErrInvalidPrice  = errors.New("price_pln must be positive")
	ErrInvalidMode   = errors.New("mode must be dj or private_event")
)

type Mode string

const (
	ModeDJ           Mode = "dj"
	ModePrivateEvent Mode = "private_event"
)

func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case "":
		return ModeDJ, nil
	case ModeDJ, ModePrivateEvent:
		return m, nil
	default:
		return "", ErrInvalidMode
	}
}

const DefaultPrivateTitle = "Evento privado"

// Config is the current cover offering shown on the events page.
type Config struct {
	DJName             string
	PricePLN           int64
	Active             bool
	Mode               Mode
	PrivateTitle       *string
	PrivateDescription *string
	UpdatedAt          time.Time
}

// Default applies when nothing has been configured yet.
func Default() Config {
	return Config{
		DJName:   "Dj Micke",
		PricePLN: 30,
		Active:   true,
		Mode:     ModeDJ,
	}
}

func (c Config) IsPrivate() bool {
	return c.Mode == ModePrivateEvent
}

// EventName groups tickets: the DJ name, or the private event title.
func (c Config) EventName() string {
	if !c.IsPrivate() {
		return c.DJName
	}
	return patch.TrimmedOr(c.PrivateTitle, DefaultPrivateTitle)
}

type UpdateInput struct {
	DJName             string
	PricePLN           int64
	Active             bool
	Mode               string
	PrivateTitle       *string
	PrivateDescription *string
}

func NewConfig(in UpdateInput, now time.Time) (Config, error) {
	dj := strings.TrimSpace(in.DJName)
	if dj == "" {
		return Config{}, ErrMissingDJName
	}
	if in.PricePLN <= 0 {
		return Config{}, ErrInvalidPrice
	}
	mode, err := ParseMode(in.Mode)
	if err != nil {
		return Config{}, err
	}
	return Config{
		DJName:             dj,
		PricePLN:           in.PricePLN,
		Active:             in.Active,
		Mode:               mode,
		PrivateTitle:       trimmed(in.PrivateTitle),
		PrivateDescription: trimmed(in.PrivateDescription),
		UpdatedAt:          now,
	}, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
