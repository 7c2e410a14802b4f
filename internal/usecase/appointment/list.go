package appointment

import (
	"context"
	"sort"
	"strings"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ListInput filters appointments. Both fields are optional; Date is a
// calendar day in the clinic timezone.
type ListInput struct {
	DoctorID string
	Date     string
}

type ListAppointments struct {
	repo     domain.Repository
	catalog  catalog.Reader
	settings Settings
}

func NewListAppointments(
	repo domain.Repository,
	catalog catalog.Reader,
	settings Settings,
) *ListAppointments {
	return &ListAppointments{
		repo:     repo,
		catalog:  catalog,
		settings: settings,
	}
}

// Execute returns the matching appointments, cancelled ones included,
// ordered by start time.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListInput,
) ([]models.Appointment, error) {

	filter := domain.ListFilter{DoctorID: strings.TrimSpace(in.DoctorID)}

	if filter.DoctorID != "" {
		if _, err := uc.catalog.GetDoctor(ctx, filter.DoctorID); err != nil {
			return nil, err
		}
	}

	if date := strings.TrimSpace(in.Date); date != "" {
		day, err := timezone.ParseDate(uc.settings.Location, date)
		if err != nil {
			return nil, domain.ValidationError("invalid date %q", date)
		}
		filter.From, filter.To = timezone.DayBounds(day)
	}

	list, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].StartTime.Before(list[j].StartTime)
	})
	return list, nil
}
