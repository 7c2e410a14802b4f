package seed

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Snapshot is a dataset with the weekly template resolved to concrete instants.
type Snapshot struct {
	Branches     []models.Branch
	Departments  []models.Department
	Doctors      []models.Doctor
	Windows      []models.WorkingHoursWindow
	Appointments []models.Appointment
}

// Expand resolves windows for `days` days starting at the date of `from`
// (in from's location) and places sample appointments. The dataset must
// already be valid.
func (ds *Dataset) Expand(from time.Time, days int, duration time.Duration) Snapshot {
	loc := from.Location()
	first := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)

	deps := make(map[string]models.Department, len(ds.Departments))
	for _, d := range ds.Departments {
		deps[d.ID] = d
	}

	snap := Snapshot{
		Branches:    append([]models.Branch(nil), ds.Branches...),
		Departments: append([]models.Department(nil), ds.Departments...),
	}

	for _, doc := range ds.Doctors {
		d := models.Doctor{ID: doc.ID, Name: doc.Name}
		for _, depID := range doc.Departments {
			d.Departments = append(d.Departments, deps[depID])
		}
		snap.Doctors = append(snap.Doctors, d)
	}

	snap.Windows = ds.Windows(from, days)

	for _, sample := range ds.Appointments {
		date := nextWeekday(first, time.Weekday(sample.Weekday))
		start := atClock(date, sample.Time)

		status := sample.Status
		if status == "" {
			status = "scheduled"
		}

		ap := models.Appointment{
			ID:           sample.ID,
			PatientName:  sample.PatientName,
			DoctorID:     sample.DoctorID,
			BranchID:     sample.BranchID,
			DepartmentID: sample.DepartmentID,
			StartTime:    start,
			EndTime:      start.Add(duration),
			Status:       status,
			NoShow:       sample.NoShow,
			CreatedAt:    from,
			UpdatedAt:    from,
		}
		if status == "cancelled" {
			ap.CancelledAt = &from
		}
		snap.Appointments = append(snap.Appointments, ap)
	}

	return snap
}

// Windows resolves the weekly template for `days` days starting at the date
// of `from`, in from's location.
func (ds *Dataset) Windows(from time.Time, days int) []models.WorkingHoursWindow {
	loc := from.Location()
	first := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)

	var out []models.WorkingHoursWindow
	for i := 0; i < days; i++ {
		date := first.AddDate(0, 0, i)
		for _, wh := range ds.WeeklyHours {
			if int(date.Weekday()) != wh.Weekday {
				continue
			}
			out = append(out, models.WorkingHoursWindow{
				DoctorID:  wh.DoctorID,
				StartTime: atClock(date, wh.Start),
				EndTime:   atClock(date, wh.End),
			})
		}
	}
	return out
}

func atClock(date time.Time, hm string) time.Time {
	t, _ := parseClock(hm)
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// nextWeekday returns the first date strictly after day falling on wd.
func nextWeekday(day time.Time, wd time.Weekday) time.Time {
	delta := (int(wd) - int(day.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return day.AddDate(0, 0, delta)
}
