package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Overlaps is the half-open interval test: [aStart,aEnd) and [bStart,bEnd)
// overlap iff aStart < bEnd && aEnd > bStart. Touching intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// IsWithinWorkingHours reports whether [start,end) fits entirely inside one of
// the doctor's windows. Windows are never spliced together, and a doctor
// without windows is never available.
func IsWithinWorkingHours(
	windows []models.WorkingHoursWindow,
	doctorID string,
	start time.Time,
	end time.Time,
) bool {
	for _, w := range windows {
		if w.DoctorID != doctorID {
			continue
		}
		if !start.Before(w.StartTime) && !end.After(w.EndTime) {
			return true
		}
	}
	return false
}

// HasConflict scans the doctor's non-cancelled appointments for an overlap
// with [start,end). excludeID skips one appointment (its own id while
// rescheduling); zero excludes nothing.
//
// Linear in the number of appointments. A per-doctor interval index is the
// upgrade if this ever runs over more than a day's worth of bookings.
func HasConflict(
	appointments []models.Appointment,
	doctorID string,
	start time.Time,
	end time.Time,
	excludeID uint,
) bool {
	for _, ap := range appointments {
		if ap.DoctorID != doctorID {
			continue
		}
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if Status(ap.Status) == StatusCancelled {
			continue
		}
		if Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return true
		}
	}
	return false
}

// CheckSlot runs both predicates in booking order and returns the error the
// booking itself would return.
func CheckSlot(
	windows []models.WorkingHoursWindow,
	appointments []models.Appointment,
	doctorID string,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {
	if !IsWithinWorkingHours(windows, doctorID, start, end) {
		return OutOfHoursError(doctorID, start, end)
	}
	if HasConflict(appointments, doctorID, start, end, excludeID) {
		return ConflictError(doctorID, start, end)
	}
	return nil
}

type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FreeSlots walks each window in steps of duration and keeps the slots that
// start at or after notBefore and do not conflict.
func FreeSlots(
	windows []models.WorkingHoursWindow,
	appointments []models.Appointment,
	doctorID string,
	duration time.Duration,
	notBefore time.Time,
) []TimeSlot {
	if duration <= 0 {
		return nil
	}

	var slots []TimeSlot
	for _, w := range windows {
		if w.DoctorID != doctorID {
			continue
		}
		for cur := w.StartTime; !cur.Add(duration).After(w.EndTime); cur = cur.Add(duration) {
			end := cur.Add(duration)
			if cur.Before(notBefore) {
				continue
			}
			if HasConflict(appointments, doctorID, cur, end, 0) {
				continue
			}
			slots = append(slots, TimeSlot{Start: cur, End: end})
		}
	}
	return slots
}
