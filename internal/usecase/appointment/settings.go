package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// Auditor receives lifecycle events. *audit.Dispatcher satisfies it.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// Settings are the clinic-wide booking rules shared by every use case.
type Settings struct {
	Location *time.Location
	Duration time.Duration
	Clock    timezone.Clock
}

func (s Settings) now() time.Time {
	return s.Clock().In(s.Location)
}

// parseStart turns the date/time pair into an instant in the clinic timezone
// and rejects anything before the minimum bookable minute.
func (s Settings) parseStart(date, clock string) (time.Time, time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" || clock == "" {
		return time.Time{}, time.Time{}, domain.ValidationError("date and time are required")
	}

	start, err := timezone.ParseDateTime(s.Location, date, clock)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ValidationError("invalid date or time %q %q", date, clock)
	}

	if min := timezone.MinBookable(s.now()); start.Before(min) {
		return time.Time{}, time.Time{}, domain.StartInPastError(start, min)
	}

	return start, start.Add(s.Duration), nil
}

// lockAppointment takes the lock of the appointment's doctor and reloads the
// record under it, so the caller decides on fresh state.
func lockAppointment(
	ctx context.Context,
	repo domain.Repository,
	locker lock.Locker,
	id uint,
) (*models.Appointment, func(), error) {

	ap, err := repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	unlock, err := locker.Lock(ctx, lock.DoctorKey(ap.DoctorID))
	if err != nil {
		return nil, nil, fmt.Errorf("lock doctor %s: %w", ap.DoctorID, err)
	}

	fresh, err := repo.GetAppointment(ctx, id)
	if err != nil {
		unlock()
		return nil, nil, err
	}
	return fresh, unlock, nil
}

func appointmentEvent(action string, ap *models.Appointment, meta any) audit.Event {
	id := ap.ID
	return audit.Event{
		Action:   action,
		Entity:   "appointment",
		EntityID: &id,
		Metadata: meta,
	}
}

func auditConflict(doctorID string, start, end time.Time) audit.Event {
	return audit.Event{
		Action: "appointment_conflict",
		Entity: "appointment",
		Metadata: map[string]any{
			"doctor_id": doctorID,
			"start":     start,
			"end":       end,
		},
	}
}
