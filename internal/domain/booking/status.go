package booking

import "github.com/BruksfildServices01/clinic-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var AllStatuses = []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

func ParseStatus(s string) (Status, bool) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// HoldsInspectionNumber is true for the statuses that must carry a number.
func (s Status) HoldsInspectionNumber() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Transitions
// ===============================

// Transition validates from -> to. Allowed:
//
//	pending   -> confirmed | cancelled
//	confirmed -> completed | cancelled
//
// cancelled and completed are terminal.
func Transition(from, to Status) error {
	switch from {
	case StatusPending:
		switch to {
		case StatusConfirmed, StatusCancelled:
			return nil
		case StatusCompleted:
			return httperr.ErrInvalidState("booking_not_confirmed", "Only confirmed bookings can be completed.")
		case StatusPending:
			return httperr.ErrInvalidState("already_pending", "Booking is already pending.")
		}

	case StatusConfirmed:
		switch to {
		case StatusCompleted, StatusCancelled:
			return nil
		case StatusConfirmed:
			return httperr.ErrInvalidState("already_confirmed", "Booking is already confirmed.")
		case StatusPending:
			return httperr.ErrInvalidState("invalid_transition", "Confirmed bookings cannot return to pending.")
		}

	case StatusCancelled:
		if to == StatusCancelled {
			return httperr.ErrInvalidState("already_cancelled", "Booking is already cancelled.")
		}
		if to.valid() {
			return httperr.ErrInvalidState("booking_cancelled", "Booking is cancelled.")
		}

	case StatusCompleted:
		if to == StatusCompleted {
			return httperr.ErrInvalidState("already_completed", "Booking is already completed.")
		}
		if to.valid() {
			return httperr.ErrInvalidState("booking_completed", "Booking is already completed.")
		}

	default:
		return httperr.ErrInvalidState("invalid_status", "Booking has an unknown status.")
	}

	return httperr.ErrInvalidState("invalid_status", "Unknown target status.")
}

// CanModify guards patient-side edits and deletion.
func CanModify(current Status) error {
	if current != StatusPending {
		return httperr.ErrInvalidState("booking_not_pending", "Only pending bookings can be changed by the patient.")
	}
	return nil
}

func (s Status) valid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}
