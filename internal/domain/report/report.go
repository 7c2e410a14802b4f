// Package report turns the appointment store into read-only summaries.
// Cancelled appointments never contribute to any figure.
package report

import (
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type DoctorWorkload struct {
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name,omitempty"`
	Scheduled  int    `json:"scheduled"`
	Completed  int    `json:"completed"`
	NoShow     int    `json:"no_show"`
}

// Workload keeps rows in the order doctors were first encountered.
type Workload []DoctorWorkload

func (w Workload) Get(doctorID string) (DoctorWorkload, bool) {
	for _, row := range w {
		if row.DoctorID == doctorID {
			return row, true
		}
	}
	return DoctorWorkload{}, false
}

type DepartmentTrend struct {
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name,omitempty"`
	Count          int    `json:"count"`
}

type Trends []DepartmentTrend

func (t Trends) Get(departmentID string) (DepartmentTrend, bool) {
	for _, row := range t {
		if row.DepartmentID == departmentID {
			return row, true
		}
	}
	return DepartmentTrend{}, false
}

// WorkloadByDoctor counts scheduled, completed and no-show appointments per
// doctor. A no-show is counted only as a no-show, never also as completed or
// scheduled.
func WorkloadByDoctor(appointments []models.Appointment) Workload {
	out := Workload{}
	index := make(map[string]int)

	for _, ap := range appointments {
		status := domain.Status(ap.Status)
		if status == domain.StatusCancelled {
			continue
		}

		i, ok := index[ap.DoctorID]
		if !ok {
			i = len(out)
			index[ap.DoctorID] = i
			out = append(out, DoctorWorkload{DoctorID: ap.DoctorID})
		}

		switch {
		case ap.NoShow:
			out[i].NoShow++
		case status == domain.StatusCompleted:
			out[i].Completed++
		case status == domain.StatusScheduled:
			out[i].Scheduled++
		}
	}
	return out
}

func TrendsByDepartment(appointments []models.Appointment) Trends {
	out := Trends{}
	index := make(map[string]int)

	for _, ap := range appointments {
		if domain.Status(ap.Status) == domain.StatusCancelled {
			continue
		}

		i, ok := index[ap.DepartmentID]
		if !ok {
			i = len(out)
			index[ap.DepartmentID] = i
			out = append(out, DepartmentTrend{DepartmentID: ap.DepartmentID})
		}
		out[i].Count++
	}
	return out
}
