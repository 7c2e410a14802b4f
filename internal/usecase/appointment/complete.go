package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type CompleteAppointment struct {
	repo     domain.Repository
	locker   lock.Locker
	audit    Auditor
	settings Settings
}

func NewCompleteAppointment(
	repo domain.Repository,
	locker lock.Locker,
	audit Auditor,
	settings Settings,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:     repo,
		locker:   locker,
		audit:    audit,
		settings: settings,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, unlock, err := lockAppointment(ctx, uc.repo, uc.locker, appointmentID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := domain.Complete(ap, uc.settings.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(appointmentEvent("appointment_completed", ap, nil))

	return ap, nil
}
