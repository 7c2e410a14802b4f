package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// Business error codes returned by the lifecycle operations.
const (
	CodeValidation       = "validation_error"
	CodeStartInPast      = "start_in_past"
	CodeOutOfHours       = "outside_working_hours"
	CodeConflict         = "time_conflict"
	CodeNotFound         = "appointment_not_found"
	CodeAlreadyCancelled = "already_cancelled"
	CodeInvalidState     = "invalid_state"
)

const clockLayout = "2006-01-02 15:04"

func ValidationError(format string, args ...any) error {
	return httperr.ErrBusinessf(CodeValidation, format, args...)
}

func StartInPastError(start, min time.Time) error {
	return httperr.ErrBusinessf(
		CodeStartInPast,
		"start %s is before the earliest bookable time %s",
		start.Format(clockLayout), min.Format(clockLayout),
	)
}

func OutOfHoursError(doctorID string, start, end time.Time) error {
	return httperr.ErrBusinessf(
		CodeOutOfHours,
		"doctor %s does not work from %s to %s",
		doctorID, start.Format(clockLayout), end.Format("15:04"),
	)
}

func ConflictError(doctorID string, start, end time.Time) error {
	return httperr.ErrBusinessf(
		CodeConflict,
		"doctor %s already has an appointment between %s and %s",
		doctorID, start.Format(clockLayout), end.Format("15:04"),
	)
}

func NotFoundError(id uint) error {
	return httperr.ErrBusinessf(CodeNotFound, "appointment %d does not exist", id)
}

func AlreadyCancelledError(id uint) error {
	return httperr.ErrBusinessf(CodeAlreadyCancelled, "appointment %d is cancelled", id)
}

func InvalidStateError(id uint, action string, current Status) error {
	return httperr.ErrBusinessf(
		CodeInvalidState,
		"appointment %d cannot be %s while %s",
		id, action, current,
	)
}

// IsValidation groups the codes that mean "fix the input and retry".
func IsValidation(err error) bool {
	return httperr.IsBusiness(err, CodeValidation) || httperr.IsBusiness(err, CodeStartInPast)
}

