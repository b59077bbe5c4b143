package reservation

import "github.com/google/uuid"

const (
	// BufferMinutes is the table turnover margin added on both sides of an existing booking.
	BufferMinutes = 120
	// DefaultDurationMinutes applies when a reservation has no exit time.
	DefaultDurationMinutes = 120
)

// Window is a span in minutes since midnight of the reservation date. End may exceed a day
// when the exit time falls after midnight.
type Window struct {
	Start int
	End   int
}

func NewWindow(entry ClockTime, exit *ClockTime) Window {
	start := entry.Minutes()
	if exit == nil {
		return Window{Start: start, End: start + DefaultDurationMinutes}
	}
	end := exit.Minutes()
	if end <= start {
		end += minutesPerDay
	}
	return Window{Start: start, End: end}
}

// Buffered widens w by BufferMinutes on both sides.
func (w Window) Buffered() Window {
	return Window{Start: w.Start - BufferMinutes, End: w.End + BufferMinutes}
}

// Overlaps is the half-open interval test against other.
func (w Window) Overlaps(other Window) bool {
	return w.Start < other.End && w.End > other.Start
}

// ConflictsWith reports whether a candidate window collides with an existing booking's window
// once the turnover buffer is applied.
func (w Window) ConflictsWith(existing Window) bool {
	return w.Overlaps(existing.Buffered())
}

// Candidate is the part of a booking request the checker looks at.
type Candidate struct {
	Date      string
	EntryTime *ClockTime
	ExitTime  *ClockTime
	TableID   *string
	// Exclude skips the reservation being edited
	Exclude   uuid.UUID
}

// Checkable reports whether a conflict check applies at all. Without an entry time or a
// table there is nothing to compare against.
func (c Candidate) Checkable() bool {
	return c.EntryTime != nil && c.TableID != nil && *c.TableID != ""
}

func (c Candidate) Window() Window {
	return NewWindow(*c.EntryTime, c.ExitTime)
}

// FindConflicts returns the active reservations in existing whose buffered window the candidate
// overlaps. Rows without an entry time, on another table or date, or cancelled are ignored.
func FindConflicts(c Candidate, existing []*Reservation) []*Reservation {
	if !c.Checkable() {
		return nil
	}
	want := c.Window()

	var out []*Reservation
	for _, r := range existing {
		if r == nil || !r.IsActive() || r.date != c.Date || r.id == c.Exclude {
			continue
		}
		if r.tableID == nil || *r.tableID != *c.TableID {
			continue
		}
		w, ok := r.Window()
		if !ok {
			continue
		}
		if want.ConflictsWith(w) {
			out = append(out, r)
		}
	}
	return out
}

// Availability is the checker's verdict. Err carries a store failure that was swallowed so
// the customer is not blocked; Available is true in that case.
type Availability struct {
	Available bool
	Conflicts []*Reservation
	Err       error
}
