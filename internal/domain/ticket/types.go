package ticket

import "strings"

type Status string

const (
	StatusPaid           Status = "paid"
	StatusManual         Status = "manual"
	StatusManualPending  Status = "manual_pending"
	StatusPrivatePending Status = "private_pending"
	StatusDisabled       Status = "disabled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPaid, StatusManual, StatusManualPending, StatusPrivatePending, StatusDisabled:
		return true
	default:
		return false
	}
}

// IsAdmittable reports whether the door may let a holder in with this status.
func (s Status) IsAdmittable() bool {
	return s == StatusPaid || s == StatusManual
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// InferActiveStatus picks the admittable status a ticket returns to when it is re-enabled.
// Pending manual grants become manual; anything else falls back on the price.
func InferActiveStatus(current Status, pricePLN int64) Status {
	switch current {
	case StatusManualPending, StatusManual:
		return StatusManual
	case StatusPaid:
		return StatusPaid
	default:
		if pricePLN > 0 {
			return StatusPaid
		}
		return StatusManual
	}
}
