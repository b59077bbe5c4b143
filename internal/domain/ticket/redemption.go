package ticket

import (
	"fmt"
	"time"

	"macondo-backend/internal/pkg/errs"
)

// DefaultGraceWindow absorbs double taps and retried scans of a ticket that was just admitted.
const DefaultGraceWindow = 5 * time.Minute

// AlreadyUsedError reports who admitted the ticket and when.
type AlreadyUsedError struct {
	UsedAt time.Time
	UsedBy string
}

func (e *AlreadyUsedError) Error() string {
	return fmt.Sprintf("ticket already used at %s by %q", e.UsedAt.UTC().Format(time.RFC3339), e.UsedBy)
}

func (e *AlreadyUsedError) Is(target error) bool {
	return target == errs.ErrAlreadyUsed
}

func NewAlreadyUsedError(usedAt *time.Time, usedBy *string) *AlreadyUsedError {
	e := &AlreadyUsedError{}
	if usedAt != nil {
		e.UsedAt = *usedAt
	}
	if usedBy != nil {
		e.UsedBy = *usedBy
	}
	return e
}

type Admission int

const (
	// AdmitFirst means the ticket is unused and the caller must win the conditional update.
	AdmitFirst Admission = iota + 1
	// AdmitGrace means the ticket was used moments ago and the repeat scan is accepted.
	AdmitGrace
)

// CheckAdmission applies the state machine before any write. It never mutates the ticket.
func (t *Ticket) CheckAdmission(now time.Time, grace time.Duration) (Admission, error) {
	if !t.status.IsAdmittable() {
		return 0, errs.Wrapf(errs.ErrNotActive, "ticket status %s", t.status)
	}
	if t.usedAt == nil {
		return AdmitFirst, nil
	}
	if now.Sub(*t.usedAt) <= grace {
		return AdmitGrace, nil
	}
	return 0, NewAlreadyUsedError(t.usedAt, t.usedBy)
}
