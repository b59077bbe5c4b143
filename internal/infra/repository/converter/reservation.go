package converter

import (
	"macondo-backend/internal/domain/reservation"
	"macondo-backend/internal/infra/store"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/pkg/pgconv"
)

const (
	ReservationTable = "reservations"

	ColID        = "id"
	ColStatus    = "status"
	ColCreatedAt = "created_at"
	ColDate      = "date"
	ColTableID   = "table_id"
	ColEntryTime = "entry_time"
)

func ReservationToRow(r *reservation.Reservation) store.Row {
	return store.Row{
		ColID:        r.ID().String(),
		"name":       r.Name(),
		"email":      r.Email(),
		"phone":      nullable(r.Phone()),
		ColDate:      r.Date(),
		ColEntryTime: clockOrNil(r.EntryTime()),
		"exit_time":  clockOrNil(r.ExitTime()),
		"party_size": r.PartySize(),
		"comment":    nullable(r.Comment()),
		ColTableID:   nullable(r.TableID()),
		ColStatus:    r.Status().String(),
		ColCreatedAt: r.CreatedAt(),
	}
}

func ReservationFromRow(row store.Row) (*reservation.Reservation, error) {
	entry, err := reservation.ParseOptionalClockTime(pgconv.StringPtr(row[ColEntryTime]))
	if err != nil {
		return nil, errs.Wrap(err, "stored entry_time")
	}
	exit, err := reservation.ParseOptionalClockTime(pgconv.StringPtr(row["exit_time"]))
	if err != nil {
		return nil, errs.Wrap(err, "stored exit_time")
	}
	status, err := reservation.ParseStatus(pgconv.String(row[ColStatus]))
	if err != nil {
		return nil, errs.Wrap(err, "stored status")
	}

	return reservation.ReconstructReservation(
		pgconv.UUID(row[ColID]),
		pgconv.String(row["name"]),
		pgconv.String(row["email"]),
		pgconv.StringPtr(row["phone"]),
		pgconv.Date(row[ColDate]),
		entry,
		exit,
		int(pgconv.Int64(row["party_size"])),
		pgconv.StringPtr(row["comment"]),
		pgconv.StringPtr(row[ColTableID]),
		status,
		pgconv.Time(row[ColCreatedAt]),
	), nil
}

func ReservationsFromRows(rows []store.Row) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		r, err := ReservationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func clockOrNil(c *reservation.ClockTime) any {
	if c == nil {
		return nil
	}
	return c.String()
}

// nullable turns a nil pointer into an untyped nil so both stores see SQL NULL.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
