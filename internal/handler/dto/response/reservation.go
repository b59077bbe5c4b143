package response

import (
	"time"

	"macondo-backend/internal/domain/reservation"
	"macondo-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Date      string    `json:"date"`
	EntryTime *string   `json:"entry_time,omitempty"`
	ExitTime  *string   `json:"exit_time,omitempty"`
	PartySize int       `json:"party_size"`
	Comment   *string   `json:"comment,omitempty"`
	TableID   *string   `json:"table_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReservationResponse struct {
	OK          bool                 `json:"ok"`
	Reservation *ReservationResponse `json:"reservation"`
}

type AvailabilityResponse struct {
	Available bool                   `json:"available"`
	Conflicts []*ReservationResponse `json:"conflicts"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return copyTo[ReservationResponse](v)
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	return copyAll[ReservationResponse](vs)
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return FromReservationView(queries.NewReservationView(r))
}

func FromReservations(rs []*reservation.Reservation) []*ReservationResponse {
	return FromReservationViews(queries.NewReservationViews(rs))
}

// FromAvailability never reports the swallowed store error; the verdict is all the caller gets.
func FromAvailability(a reservation.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available: a.Available,
		Conflicts: FromReservations(a.Conflicts),
	}
}
