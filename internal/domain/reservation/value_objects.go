package reservation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ClockTime is a wall-clock time of day stored as minutes since midnight.
type ClockTime struct {
	minutes int
}

// ParseClockTime accepts "HH:MM" and "HH:MM:SS" (the form Postgres returns for time columns).
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return ClockTime{}, ErrInvalidTime
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return ClockTime{}, ErrInvalidTime
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return ClockTime{}, ErrInvalidTime
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || sec < 0 || sec > 59 {
			return ClockTime{}, ErrInvalidTime
		}
	}
	return ClockTime{minutes: h*60 + m}, nil
}

// ParseOptionalClockTime treats nil and blank input as "not given".
func ParseOptionalClockTime(s *string) (*ClockTime, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	ct, err := ParseClockTime(*s)
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

func MustClockTime(s string) ClockTime {
	ct, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return ct
}

func (c ClockTime) Minutes() int {
	return c.minutes
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.minutes/60, c.minutes%60)
}

// ParseDate validates a calendar day in YYYY-MM-DD form.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return "", ErrInvalidDate
	}
	return s, nil
}

func NormalizeEmail(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return "", ErrInvalidEmail
	}
	return s, nil
}

func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
