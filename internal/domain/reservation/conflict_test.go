//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"macondo-backend/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDate = "2026-03-14"

func clockPtr(s string) *reservation.ClockTime {
	ct := reservation.MustClockTime(s)
	return &ct
}

func strPtr(s string) *string {
	return &s
}

func existing(table, entry string, exit *string, status reservation.Status) *reservation.Reservation {
	var exitTime *reservation.ClockTime
	if exit != nil {
		exitTime = clockPtr(*exit)
	}
	var entryTime *reservation.ClockTime
	if entry != "" {
		entryTime = clockPtr(entry)
	}
	return reservation.ReconstructReservation(
		uuid.New(), "Ana", "ana@example.com", nil, testDate,
		entryTime, exitTime, 2, nil, strPtr(table), status, time.Now(),
	)
}

func candidate(table, entry string, exit *string) reservation.Candidate {
	c := reservation.Candidate{Date: testDate, EntryTime: clockPtr(entry)}
	if exit != nil {
		c.ExitTime = clockPtr(*exit)
	}
	if table != "" {
		c.TableID = strPtr(table)
	}
	return c
}

func TestWindow(t *testing.T) {
	t.Run("defaults to two hours without an exit time", func(t *testing.T) {
		w := reservation.NewWindow(reservation.MustClockTime("19:00"), nil)
		assert.Equal(t, reservation.Window{Start: 1140, End: 1260}, w)
	})

	t.Run("exit after midnight rolls into the next day", func(t *testing.T) {
		w := reservation.NewWindow(reservation.MustClockTime("23:00"), clockPtr("01:00"))
		assert.Equal(t, reservation.Window{Start: 1380, End: 1500}, w)
	})

	t.Run("exit equal to entry is a full day", func(t *testing.T) {
		w := reservation.NewWindow(reservation.MustClockTime("10:00"), clockPtr("10:00"))
		assert.Equal(t, 600+24*60, w.End)
	})

	t.Run("buffer widens both sides", func(t *testing.T) {
		w := reservation.Window{Start: 1080, End: 1200}.Buffered()
		assert.Equal(t, reservation.Window{Start: 960, End: 1320}, w)
	})
}

func TestFindConflicts(t *testing.T) {
	// 18:00-20:00 on T1 blocks 16:00-22:00 once buffered
	booked := existing("T1", "18:00", strPtr("20:00"), reservation.StatusConfirmed)

	tests := []struct {
		name     string
		cand     reservation.Candidate
		existing []*reservation.Reservation
		want     int
	}{
		{
			name:     "candidate starting inside the trailing buffer conflicts",
			cand:     candidate("T1", "21:00", nil),
			existing: []*reservation.Reservation{booked},
			want:     1,
		},
		{
			name:     "candidate starting exactly when the buffer ends is free",
			cand:     candidate("T1", "22:00", nil),
			existing: []*reservation.Reservation{booked},
			want:     0,
		},
		{
			name:     "candidate ending exactly when the leading buffer starts is free",
			cand:     candidate("T1", "14:00", nil),
			existing: []*reservation.Reservation{booked},
			want:     0,
		},
		{
			name:     "candidate ending one minute into the leading buffer conflicts",
			cand:     candidate("T1", "14:01", nil),
			existing: []*reservation.Reservation{booked},
			want:     1,
		},
		{
			name:     "explicit exit time shortens the candidate",
			cand:     candidate("T1", "13:00", strPtr("15:30")),
			existing: []*reservation.Reservation{booked},
			want:     0,
		},
		{
			name:     "other tables never conflict",
			cand:     candidate("T2", "19:00", nil),
			existing: []*reservation.Reservation{booked},
			want:     0,
		},
		{
			name:     "cancelled reservations are ignored",
			cand:     candidate("T1", "19:00", nil),
			existing: []*reservation.Reservation{existing("T1", "19:00", nil, reservation.StatusCancelled)},
			want:     0,
		},
		{
			name:     "pending reservations hold the table",
			cand:     candidate("T1", "19:00", nil),
			existing: []*reservation.Reservation{existing("T1", "19:00", nil, reservation.StatusPending)},
			want:     1,
		},
		{
			name:     "existing rows without an entry time are ignored",
			cand:     candidate("T1", "19:00", nil),
			existing: []*reservation.Reservation{existing("T1", "", nil, reservation.StatusConfirmed)},
			want:     0,
		},
		{
			name:     "no table means nothing to check",
			cand:     candidate("", "19:00", nil),
			existing: []*reservation.Reservation{booked},
			want:     0,
		},
		{
			name:     "back to back slots still fall inside the buffer",
			cand:     candidate("T1", "12:01", strPtr("14:00")),
			existing: []*reservation.Reservation{existing("T1", "10:00", strPtr("12:00"), reservation.StatusConfirmed)},
			want:     1,
		},
		{
			name:     "two open ended evening bookings overlap",
			cand:     candidate("T1", "21:30", nil),
			existing: []*reservation.Reservation{existing("T1", "19:00", nil, reservation.StatusConfirmed)},
			want:     1,
		},
		{
			name:     "late booking crossing midnight blocks the evening",
			cand:     candidate("T1", "21:30", nil),
			existing: []*reservation.Reservation{existing("T1", "23:00", strPtr("01:00"), reservation.StatusConfirmed)},
			want:     1,
		},
		{
			name:     "early morning on the same date is not covered by a late booking",
			cand:     candidate("T1", "03:00", nil),
			existing: []*reservation.Reservation{existing("T1", "23:00", strPtr("01:00"), reservation.StatusConfirmed)},
			want:     0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := reservation.FindConflicts(tc.cand, tc.existing)
			assert.Len(t, got, tc.want)
		})
	}

	t.Run("excluded reservation does not conflict with itself", func(t *testing.T) {
		cand := candidate("T1", "18:00", strPtr("20:00"))
		cand.Exclude = booked.ID()
		assert.Empty(t, reservation.FindConflicts(cand, []*reservation.Reservation{booked}))
	})

	t.Run("other dates are ignored", func(t *testing.T) {
		cand := candidate("T1", "19:00", nil)
		cand.Date = "2026-03-15"
		assert.Empty(t, reservation.FindConflicts(cand, []*reservation.Reservation{booked}))
	})

	t.Run("returns every blocking reservation", func(t *testing.T) {
		second := existing("T1", "20:30", nil, reservation.StatusPending)
		got := reservation.FindConflicts(candidate("T1", "19:30", nil), []*reservation.Reservation{booked, second})
		require.Len(t, got, 2)
		assert.Equal(t, booked.ID(), got[0].ID())
		assert.Equal(t, second.ID(), got[1].ID())
	})
}

func TestNewReservation(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	base := func() reservation.NewReservationInput {
		return reservation.NewReservationInput{
			Name:      "Ana",
			Email:     "Ana@Example.com ",
			Date:      testDate,
			EntryTime: strPtr("19:00"),
			TableID:   strPtr("T1"),
		}
	}

	t.Run("valid submission starts pending", func(t *testing.T) {
		r, err := reservation.NewReservation(base(), now)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.Equal(t, "ana@example.com", r.Email())
		assert.Equal(t, reservation.DefaultPartySize, r.PartySize())
		assert.Equal(t, "19:00", r.EntryTime().String())
		assert.Nil(t, r.ExitTime())
	})

	tests := []struct {
		name   string
		mutate func(*reservation.NewReservationInput)
		errIs  error
	}{
		{name: "blank name", mutate: func(in *reservation.NewReservationInput) { in.Name = "  " }, errIs: reservation.ErrInvalidName},
		{name: "bad email", mutate: func(in *reservation.NewReservationInput) { in.Email = "nope" }, errIs: reservation.ErrInvalidEmail},
		{name: "bad date", mutate: func(in *reservation.NewReservationInput) { in.Date = "14/03/2026" }, errIs: reservation.ErrInvalidDate},
		{name: "bad entry time", mutate: func(in *reservation.NewReservationInput) { in.EntryTime = strPtr("25:00") }, errIs: reservation.ErrInvalidTime},
		{name: "zero party", mutate: func(in *reservation.NewReservationInput) { z := 0; in.PartySize = &z }, errIs: reservation.ErrInvalidPartySize},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := base()
			tc.mutate(&in)
			_, err := reservation.NewReservation(in, now)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}

	t.Run("blank optional fields are dropped", func(t *testing.T) {
		in := base()
		in.TableID = strPtr(" ")
		in.ExitTime = strPtr("")
		r, err := reservation.NewReservation(in, now)
		require.NoError(t, err)
		assert.Nil(t, r.TableID())
		assert.Nil(t, r.ExitTime())
	})
}

func TestParseClockTime(t *testing.T) {
	ct, err := reservation.ParseClockTime("07:05:00")
	require.NoError(t, err)
	assert.Equal(t, 7*60+5, ct.Minutes())
	assert.Equal(t, "07:05", ct.String())

	for _, bad := range []string{"", "7", "24:00", "12:60", "aa:bb", "12:00:61"} {
		_, err := reservation.ParseClockTime(bad)
		assert.ErrorIs(t, err, reservation.ErrInvalidTime, bad)
	}
}
