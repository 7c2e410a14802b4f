package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// MarkNoShow flags a scheduled appointment whose patient never arrived.
// The status stays scheduled; reports count it under no-show only.
type MarkNoShow struct {
	repo   domain.Repository
	locker lock.Locker
	audit  Auditor
}

func NewMarkNoShow(
	repo domain.Repository,
	locker lock.Locker,
	audit Auditor,
) *MarkNoShow {
	return &MarkNoShow{
		repo:   repo,
		locker: locker,
		audit:  audit,
	}
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, unlock, err := lockAppointment(ctx, uc.repo, uc.locker, appointmentID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := domain.MarkNoShow(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(appointmentEvent("appointment_no_show", ap, nil))

	return ap, nil
}
