package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ListFilter struct {
	DoctorID string

	// From/To bound StartTime as [From, To). Zero values leave the side open.
	From time.Time
	To   time.Time
}

// Repository is the single authority for appointment state. Lookups of a
// missing appointment return an error satisfying IsBusiness(err, CodeNotFound).
type Repository interface {
	// -------- Availability inputs --------
	ListWorkingHours(
		ctx context.Context,
		doctorID string,
	) ([]models.WorkingHoursWindow, error)

	ListDoctorAppointments(
		ctx context.Context,
		doctorID string,
	) ([]models.Appointment, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)
}
