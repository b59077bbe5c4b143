package request

import (
	"time"

	"macondo-backend/internal/domain/reservation"
)

type CreateReservationRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Date      string  `json:"date"`
	EntryTime *string `json:"entry_time,omitempty"`
	ExitTime  *string `json:"exit_time,omitempty"`
	PartySize *int    `json:"party_size,omitempty"`
	Comment   *string `json:"comment,omitempty"`
	TableID   *string `json:"table_id,omitempty"`
}

func (r CreateReservationRequest) ToDomain(now time.Time) (*reservation.Reservation, error) {
	return reservation.NewReservation(reservation.NewReservationInput{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Date:      r.Date,
		EntryTime: r.EntryTime,
		ExitTime:  r.ExitTime,
		PartySize: r.PartySize,
		Comment:   r.Comment,
		TableID:   r.TableID,
	}, now)
}

type AvailabilityQuery struct {
	Date      string  `form:"date" binding:"required"`
	EntryTime *string `form:"entry_time"`
	ExitTime  *string `form:"exit_time"`
	TableID   *string `form:"table_id"`
}

func (q AvailabilityQuery) ToCandidate() (reservation.Candidate, error) {
	date, err := reservation.ParseDate(q.Date)
	if err != nil {
		return reservation.Candidate{}, err
	}
	entry, err := reservation.ParseOptionalClockTime(q.EntryTime)
	if err != nil {
		return reservation.Candidate{}, err
	}
	exit, err := reservation.ParseOptionalClockTime(q.ExitTime)
	if err != nil {
		return reservation.Candidate{}, err
	}
	return reservation.Candidate{
		Date:      date,
		EntryTime: entry,
		ExitTime:  exit,
		TableID:   q.TableID,
	}, nil
}

type ListReservationsQuery struct {
	Date   string `form:"date"`
	Status string `form:"status"`
	Limit  int    `form:"limit"`
}

type SetReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignTableRequest struct {
	// TableID nil or blank removes the assignment
	TableID *string `json:"table_id"`
}
