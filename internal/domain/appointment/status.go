package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func InitialStatus() Status {
	return StatusScheduled
}

// ===============================
// Validations
// ===============================

// CanCancel allows only scheduled appointments to be cancelled. Cancelling twice fails.
func CanCancel(id uint, current Status) error {
	switch current {
	case StatusScheduled:
		return nil
	case StatusCancelled:
		return AlreadyCancelledError(id)
	default:
		return InvalidStateError(id, "cancelled", current)
	}
}

// CanReschedule rejects only cancelled appointments; a successful reschedule
// puts the appointment back to scheduled.
func CanReschedule(id uint, current Status) error {
	if current == StatusCancelled {
		return AlreadyCancelledError(id)
	}
	return nil
}

func CanComplete(id uint, current Status, noShow bool) error {
	switch {
	case current == StatusCancelled:
		return AlreadyCancelledError(id)
	case current != StatusScheduled:
		return InvalidStateError(id, "completed", current)
	case noShow:
		return InvalidStateError(id, "completed", "no-show")
	}
	return nil
}

func CanMarkNoShow(id uint, current Status, noShow bool) error {
	switch {
	case current == StatusCancelled:
		return AlreadyCancelledError(id)
	case current != StatusScheduled:
		return InvalidStateError(id, "marked as no-show", current)
	case noShow:
		return InvalidStateError(id, "marked as no-show", "no-show")
	}
	return nil
}
