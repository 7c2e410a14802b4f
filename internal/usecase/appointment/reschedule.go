package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type RescheduleInput struct {
	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// RescheduleAppointment moves an appointment to a new start keeping the
// configured duration. The appointment's own interval never conflicts with
// itself.
type RescheduleAppointment struct {
	repo     domain.Repository
	locker   lock.Locker
	audit    Auditor
	settings Settings
}

func NewRescheduleAppointment(
	repo domain.Repository,
	locker lock.Locker,
	audit Auditor,
	settings Settings,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:     repo,
		locker:   locker,
		audit:    audit,
		settings: settings,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	in RescheduleInput,
) (*models.Appointment, error) {

	// not found and cancelled win over a malformed request
	current, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanReschedule(current.ID, domain.Status(current.Status)); err != nil {
		return nil, err
	}

	start, end, err := uc.settings.parseStart(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	ap, unlock, err := lockAppointment(ctx, uc.repo, uc.locker, appointmentID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := domain.CanReschedule(ap.ID, domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	windows, existing, err := loadSchedule(ctx, uc.repo, ap.DoctorID)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckSlot(windows, existing, ap.DoctorID, start, end, ap.ID); err != nil {
		if httperr.IsBusiness(err, domain.CodeConflict) {
			uc.audit.Dispatch(auditConflict(ap.DoctorID, start, end))
		}
		return nil, err
	}

	previous := map[string]any{
		"from_start": ap.StartTime,
		"to_start":   start,
	}

	if err := domain.Reschedule(ap, start, end); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(appointmentEvent("appointment_rescheduled", ap, previous))

	return ap, nil
}
