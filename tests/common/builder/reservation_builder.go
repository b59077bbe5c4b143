//go:build unit || e2e

package builder

import (
	"time"

	"macondo-backend/internal/domain/reservation"
	reqdto "macondo-backend/internal/handler/dto/request"

	"github.com/stretchr/testify/require"
)

type ReservationBuilder struct {
	req reqdto.CreateReservationRequest
}

func NewReservationBuilder() *ReservationBuilder {
	entry := "19:00"
	party := 4
	table := "T1"
	return &ReservationBuilder{req: reqdto.CreateReservationRequest{
		Name:      "Ana",
		Email:     "ana@example.com",
		Date:      "2026-03-14",
		EntryTime: &entry,
		PartySize: &party,
		TableID:   &table,
	}}
}

func (b *ReservationBuilder) WithDate(d string) *ReservationBuilder {
	b.req.Date = d
	return b
}

func (b *ReservationBuilder) WithEntry(e string) *ReservationBuilder {
	b.req.EntryTime = &e
	return b
}

func (b *ReservationBuilder) WithTable(id string) *ReservationBuilder {
	b.req.TableID = &id
	return b
}

func (b *ReservationBuilder) WithoutTable() *ReservationBuilder {
	b.req.TableID = nil
	return b
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return b.req
}

// BuildDomain runs the request through the same validation the usecase applies.
func (b *ReservationBuilder) BuildDomain(t require.TestingT, now time.Time) *reservation.Reservation {
	r, err := b.req.ToDomain(now)
	require.NoError(t, err)
	return r
}
