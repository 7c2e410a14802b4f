package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func ap(id uint, doctorID, departmentID string, status domain.Status, noShow bool) models.Appointment {
	return models.Appointment{
		ID:           id,
		DoctorID:     doctorID,
		DepartmentID: departmentID,
		Status:       string(status),
		NoShow:       noShow,
	}
}

func TestWorkloadByDoctor(t *testing.T) {
	appointments := []models.Appointment{
		ap(1, "doc2", "cardio", domain.StatusScheduled, false),
		ap(2, "doc1", "cardio", domain.StatusCompleted, false),
		ap(3, "doc2", "derma", domain.StatusScheduled, true),
		ap(4, "doc2", "derma", domain.StatusCancelled, false),
		ap(5, "doc3", "derma", domain.StatusCancelled, false),
		ap(6, "doc1", "cardio", domain.StatusScheduled, false),
	}

	got := WorkloadByDoctor(appointments)

	assert.Equal(t, Workload{
		{DoctorID: "doc2", Scheduled: 1, NoShow: 1},
		{DoctorID: "doc1", Scheduled: 1, Completed: 1},
	}, got)

	_, ok := got.Get("doc3")
	assert.False(t, ok, "doctor with only cancelled appointments is not reported")
}

func TestWorkloadByDoctor_NoShowNeverCountedAsCompleted(t *testing.T) {
	got := WorkloadByDoctor([]models.Appointment{
		ap(1, "doc1", "cardio", domain.StatusCompleted, true),
	})

	row, ok := got.Get("doc1")
	assert.True(t, ok)
	assert.Equal(t, 0, row.Completed)
	assert.Equal(t, 1, row.NoShow)
}

func TestTrendsByDepartment(t *testing.T) {
	appointments := []models.Appointment{
		ap(1, "doc1", "derma", domain.StatusScheduled, false),
		ap(2, "doc1", "cardio", domain.StatusCompleted, false),
		ap(3, "doc2", "derma", domain.StatusScheduled, true),
		ap(4, "doc2", "derma", domain.StatusCancelled, false),
		ap(5, "doc3", "neuro", domain.StatusCancelled, false),
	}

	got := TrendsByDepartment(appointments)

	assert.Equal(t, Trends{
		{DepartmentID: "derma", Count: 2},
		{DepartmentID: "cardio", Count: 1},
	}, got)

	_, ok := got.Get("neuro")
	assert.False(t, ok)
}

func TestReports_Empty(t *testing.T) {
	assert.Empty(t, WorkloadByDoctor(nil))
	assert.Empty(t, TrendsByDepartment(nil))
}
