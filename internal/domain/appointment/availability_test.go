package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var day = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func window(doctorID string, from, to time.Time) models.WorkingHoursWindow {
	return models.WorkingHoursWindow{DoctorID: doctorID, StartTime: from, EndTime: to}
}

func booked(id uint, doctorID string, from, to time.Time, status Status) models.Appointment {
	return models.Appointment{ID: id, DoctorID: doctorID, StartTime: from, EndTime: to, Status: string(status)}
}

func TestIsWithinWorkingHours(t *testing.T) {
	windows := []models.WorkingHoursWindow{
		window("doc1", at(9, 0), at(17, 0)),
		window("doc5", at(8, 0), at(12, 0)),
		window("doc5", at(14, 0), at(18, 0)),
	}

	tests := []struct {
		name     string
		doctorID string
		start    time.Time
		end      time.Time
		want     bool
	}{
		{"exact window bounds", "doc1", at(9, 0), at(17, 0), true},
		{"inside window", "doc1", at(10, 0), at(10, 30), true},
		{"one minute past end", "doc1", at(16, 31), at(17, 1), false},
		{"starts before window", "doc1", at(8, 45), at(9, 15), false},
		{"second window", "doc5", at(14, 0), at(14, 30), true},
		{"gap between windows", "doc5", at(12, 0), at(12, 30), false},
		{"spans both windows", "doc5", at(11, 45), at(14, 15), false},
		{"other doctor's window", "doc2", at(10, 0), at(10, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWithinWorkingHours(windows, tt.doctorID, tt.start, tt.end))
		})
	}
}

func TestIsWithinWorkingHours_NoWindows(t *testing.T) {
	for h := 0; h < 24; h++ {
		assert.False(t, IsWithinWorkingHours(nil, "doc1", at(h, 0), at(h, 30)))
	}
}

func TestHasConflict(t *testing.T) {
	existing := []models.Appointment{
		booked(1, "doc1", at(10, 0), at(10, 30), StatusScheduled),
		booked(2, "doc1", at(11, 0), at(11, 30), StatusCancelled),
		booked(3, "doc2", at(12, 0), at(12, 30), StatusScheduled),
		booked(4, "doc1", at(13, 0), at(13, 30), StatusCompleted),
	}

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		excludeID uint
		want      bool
	}{
		{"touching end boundary", at(10, 30), at(11, 0), 0, false},
		{"touching start boundary", at(9, 30), at(10, 0), 0, false},
		{"partial overlap", at(10, 15), at(10, 45), 0, true},
		{"same interval", at(10, 0), at(10, 30), 0, true},
		{"enclosing interval", at(9, 45), at(10, 45), 0, true},
		{"cancelled appointment ignored", at(11, 0), at(11, 30), 0, false},
		{"other doctor ignored", at(12, 0), at(12, 30), 0, false},
		{"completed still blocks", at(13, 15), at(13, 45), 0, true},
		{"own id excluded", at(10, 15), at(10, 45), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasConflict(existing, "doc1", tt.start, tt.end, tt.excludeID))
		})
	}
}

func TestCheckSlot_PredicatesStaySeparate(t *testing.T) {
	windows := []models.WorkingHoursWindow{window("doc1", at(9, 0), at(17, 0))}
	existing := []models.Appointment{booked(1, "doc1", at(10, 0), at(10, 30), StatusScheduled)}

	err := CheckSlot(windows, existing, "doc1", at(10, 15), at(10, 45), 0)
	assert.True(t, httperr.IsBusiness(err, CodeConflict), "within hours yet conflicting")

	err = CheckSlot(windows, existing, "doc1", at(18, 0), at(18, 30), 0)
	assert.True(t, httperr.IsBusiness(err, CodeOutOfHours), "outside hours without conflict")

	assert.NoError(t, CheckSlot(windows, existing, "doc1", at(10, 30), at(11, 0), 0))
}

func TestFreeSlots(t *testing.T) {
	windows := []models.WorkingHoursWindow{
		window("doc1", at(9, 0), at(10, 30)),
		window("doc1", at(14, 0), at(14, 45)),
	}
	existing := []models.Appointment{booked(1, "doc1", at(9, 30), at(10, 0), StatusScheduled)}

	slots := FreeSlots(windows, existing, "doc1", 30*time.Minute, at(9, 0))

	assert.Equal(t, []TimeSlot{
		{Start: at(9, 0), End: at(9, 30)},
		{Start: at(10, 0), End: at(10, 30)},
		{Start: at(14, 0), End: at(14, 30)},
	}, slots)
}

func TestFreeSlots_SkipsPast(t *testing.T) {
	windows := []models.WorkingHoursWindow{window("doc1", at(9, 0), at(11, 0))}

	slots := FreeSlots(windows, nil, "doc1", 30*time.Minute, at(9, 31))

	assert.Equal(t, []TimeSlot{
		{Start: at(10, 0), End: at(10, 30)},
		{Start: at(10, 30), End: at(11, 0)},
	}, slots)
}
