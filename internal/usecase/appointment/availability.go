package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ======================================================
// CHECK ONE SLOT
// ======================================================

type AvailabilityResult struct {
	Available bool      `json:"available"`
	Reason    string    `json:"reason,omitempty"`
	Message   string    `json:"message,omitempty"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

// CheckAvailability answers "could this slot be booked right now" with the
// same rules as BookAppointment, without writing anything.
type CheckAvailability struct {
	repo     domain.Repository
	catalog  catalog.Reader
	settings Settings
}

func NewCheckAvailability(
	repo domain.Repository,
	catalog catalog.Reader,
	settings Settings,
) *CheckAvailability {
	return &CheckAvailability{
		repo:     repo,
		catalog:  catalog,
		settings: settings,
	}
}

func (uc *CheckAvailability) Execute(
	ctx context.Context,
	doctorID, date, clock string,
) (*AvailabilityResult, error) {

	if _, err := uc.catalog.GetDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	start, end, err := uc.settings.parseStart(date, clock)
	if err != nil {
		return nil, err
	}

	windows, existing, err := loadSchedule(ctx, uc.repo, doctorID)
	if err != nil {
		return nil, err
	}

	res := &AvailabilityResult{Available: true, Start: start, End: end}

	if err := domain.CheckSlot(windows, existing, doctorID, start, end, 0); err != nil {
		code := httperr.CodeOf(err)
		if code != domain.CodeOutOfHours && code != domain.CodeConflict {
			return nil, err
		}
		res.Available = false
		res.Reason = code

		var be httperr.BusinessError
		if errors.As(err, &be) {
			res.Message = be.Message
		}
	}

	return res, nil
}

// ======================================================
// FREE SLOTS OF A DAY
// ======================================================

type ListFreeSlots struct {
	repo     domain.Repository
	catalog  catalog.Reader
	settings Settings
}

func NewListFreeSlots(
	repo domain.Repository,
	catalog catalog.Reader,
	settings Settings,
) *ListFreeSlots {
	return &ListFreeSlots{
		repo:     repo,
		catalog:  catalog,
		settings: settings,
	}
}

func (uc *ListFreeSlots) Execute(
	ctx context.Context,
	doctorID, date string,
) ([]domain.TimeSlot, error) {

	if _, err := uc.catalog.GetDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	day, err := timezone.ParseDate(uc.settings.Location, date)
	if err != nil {
		return nil, domain.ValidationError("invalid date %q", date)
	}
	dayStart, dayEnd := timezone.DayBounds(day)

	windows, existing, err := loadSchedule(ctx, uc.repo, doctorID)
	if err != nil {
		return nil, err
	}

	var today []models.WorkingHoursWindow
	for _, w := range windows {
		if !w.StartTime.Before(dayStart) && w.StartTime.Before(dayEnd) {
			today = append(today, w)
		}
	}

	notBefore := timezone.MinBookable(uc.settings.now())
	if notBefore.Before(dayStart) {
		notBefore = dayStart
	}

	slots := domain.FreeSlots(today, existing, doctorID, uc.settings.Duration, notBefore)
	if slots == nil {
		slots = []domain.TimeSlot{}
	}
	return slots, nil
}

func loadSchedule(
	ctx context.Context,
	repo domain.Repository,
	doctorID string,
) ([]models.WorkingHoursWindow, []models.Appointment, error) {

	windows, err := repo.ListWorkingHours(ctx, doctorID)
	if err != nil {
		return nil, nil, err
	}
	existing, err := repo.ListDoctorAppointments(ctx, doctorID)
	if err != nil {
		return nil, nil, err
	}
	return windows, existing, nil
}
