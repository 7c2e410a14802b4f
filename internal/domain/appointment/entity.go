package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(ap.ID, Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(ap.ID, Status(ap.Status), ap.NoShow); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment) error {
	if err := CanMarkNoShow(ap.ID, Status(ap.Status), ap.NoShow); err != nil {
		return err
	}

	ap.NoShow = true
	return nil
}

// Reschedule moves the appointment and forces it back to scheduled. Patient,
// doctor, branch and department are left untouched.
func Reschedule(ap *models.Appointment, start, end time.Time) error {
	if err := CanReschedule(ap.ID, Status(ap.Status)); err != nil {
		return err
	}

	ap.StartTime = start
	ap.EndTime = end
	ap.Status = string(StatusScheduled)
	ap.CompletedAt = nil
	ap.NoShow = false
	return nil
}
